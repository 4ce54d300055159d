// websocket/write_pump.go
package websocket

import (
	"log"
	"time"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"
)

// writePump envía los snapshots y pings al cliente
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Pánico escribiendo al tablero %s: %v", c.ID, r)
		}

		ticker.Stop()
		c.Socket.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// El administrador cerró el canal
				c.Socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.writeMessage(message); err != nil {
				return
			}

			// Drenamos los mensajes encolados en envíos individuales
			n := len(c.Send)
			for i := 0; i < n; i++ {
				message := <-c.Send
				if err := c.writeMessage(message); err != nil {
					return
				}
			}
		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// writeMessage comprime con snappy los payloads grandes y los envía
// como mensaje binario; el resto viaja como texto JSON
func (c *Client) writeMessage(message []byte) error {
	if len(message) > compressThreshold {
		return c.Socket.WriteMessage(websocket.BinaryMessage, snappy.Encode(nil, message))
	}
	return c.Socket.WriteMessage(websocket.TextMessage, message)
}
