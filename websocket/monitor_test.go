package websocket

import (
	"context"
	"testing"
	"time"
)

func TestMonitorRunSeDetieneAlCancelarElContexto(t *testing.T) {
	// El intervalo largo garantiza que la salida ocurre por el contexto
	// y no por un tick del sondeo
	monitor := NewMonitor(nil, NewManager(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("el monitor no se detuvo tras cancelar el contexto")
	}
}
