// websocket/handler.go
package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

// HandleConnections atiende las conexiones WebSocket entrantes del tablero
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error al establecer la conexión WebSocket:", err)
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		Socket: conn,
		Send:   make(chan []byte, 16),
	}

	manager.Register <- client
	log.Printf("✅ Tablero %s conectado desde %s", client.ID, r.RemoteAddr)

	// Lanzamos las goroutines de lectura y escritura
	go client.readPump(manager)
	go client.writePump()
}
