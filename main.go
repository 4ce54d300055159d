// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"

	"github.com/sapdash/proyectos_datamart/database"
	"github.com/sapdash/proyectos_datamart/routes"
	"github.com/sapdash/proyectos_datamart/websocket"
)

// ServerConfig son los parámetros del servidor del tablero
type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	DatamartPath string        `env:"DATAMART_PATH" envDefault:"./ETL/datamart.sqlite"`
	DownloadURL  string        `env:"DATAMART_DOWNLOAD_URL" envDefault:""`
	PollInterval time.Duration `env:"WS_POLL_INTERVAL" envDefault:"30s"`
}

func main() {
	fmt.Println("Iniciando el servidor del tablero...")

	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("❌ Error al leer la configuración: %v", err)
	}

	// Abrimos el datamart, descargándolo si no existe localmente
	db, err := database.Open(cfg.DatamartPath, cfg.DownloadURL)
	if err != nil {
		log.Fatalf("❌ No se pudo abrir el datamart: %v", err)
	}
	defer db.Close()

	// Administrador de conexiones WebSocket del tablero
	wsManager := websocket.NewManager()
	go wsManager.Run()

	// Monitor del journal: difunde un snapshot tras cada corrida exitosa
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()

	monitor := websocket.NewMonitor(db, wsManager, cfg.PollInterval)
	go monitor.Run(monitorCtx)

	// Registramos las rutas del API
	router := mux.NewRouter()
	routes.SetupRoutes(router, db, wsManager)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Levantamos el servidor en su propia goroutine
	go func() {
		log.Printf("✅ Servidor escuchando en http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Error al iniciar el servidor: %v", err)
		}
	}()

	// Esperamos la señal de terminación
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("⚠️ Señal de terminación recibida, cerrando conexiones...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Error al apagar el servidor: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("❌ Error al cerrar el datamart: %v", err)
	} else {
		log.Println("✅ Datamart cerrado")
	}

	log.Println("👋 Servidor detenido")
}
