// websocket/read_pump.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// readPump procesa los mensajes de control del cliente
func (c *Client) readPump(manager *Manager) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Pánico leyendo mensajes del tablero %s: %v", c.ID, r)
		}

		manager.Unregister <- c
		c.Socket.Close()
	}()

	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error en la conexión del tablero %s: %v", c.ID, err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Println("Mensaje de control no válido:", err)
			continue
		}

		// El tablero solo envía pings de aplicación
		if msg.Type == "ping" {
			if pongData, err := json.Marshal(Message{Type: "pong"}); err == nil {
				c.Send <- pongData
			}
		}
	}
}
