// websocket/monitor.go
package websocket

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/sapdash/proyectos_datamart/database"
)

// Monitor vigila el journal del ETL y difunde un snapshot del datamart
// a los tableros conectados cada vez que termina una corrida exitosa
type Monitor struct {
	db       *sql.DB
	manager  *Manager
	interval time.Duration
	lastRun  string
}

// NewMonitor crea el monitor de corridas del ETL
func NewMonitor(db *sql.DB, manager *Manager, interval time.Duration) *Monitor {
	return &Monitor{
		db:       db,
		manager:  manager,
		interval: interval,
	}
}

// Run sondea el journal hasta que se cancele el contexto
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Monitor del journal ETL detenido")
			return
		case <-ticker.C:
			m.poll()
		}
	}
}

// poll revisa la última corrida y difunde si hay una nueva exitosa
func (m *Monitor) poll() {
	status, err := database.LoadETLStatus(m.db)
	if err != nil {
		log.Printf("❌ Error consultando el journal del ETL: %v", err)
		return
	}
	if status == nil || status.Status != "success" || status.RunID == m.lastRun {
		return
	}

	summary, err := database.LoadSummaryMetrics(m.db)
	if err != nil {
		log.Printf("❌ Error consultando las métricas de resumen: %v", err)
		return
	}

	snapshot := Snapshot{
		Type:      "datamart_refresh",
		Timestamp: time.Now(),
		Summary:   summary,
		ETLStatus: status,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("❌ Error serializando el snapshot: %v", err)
		return
	}

	m.lastRun = status.RunID
	m.manager.Broadcast <- payload
	log.Printf("📡 Snapshot difundido tras la corrida %s", status.RunID)
}
