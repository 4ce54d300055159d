// websocket/manager.go
package websocket

import (
	"log"
)

// NewManager crea el administrador de conexiones del tablero
func NewManager() *Manager {
	return &Manager{
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[string]*Client),
	}
}

// Run atiende los registros, bajas y difusiones del administrador
func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.Register:
			manager.Clients[client.ID] = client
			log.Printf("👤 Tablero %s conectado (%d activos)", client.ID, len(manager.Clients))

		case client := <-manager.Unregister:
			if _, ok := manager.Clients[client.ID]; ok {
				delete(manager.Clients, client.ID)
				close(client.Send)
				log.Printf("👤 Tablero %s desconectado (%d activos)", client.ID, len(manager.Clients))
			}

		case message := <-manager.Broadcast:
			// Difundimos el snapshot a todos los tableros conectados
			manager.broadcast(message)
		}
	}
}

// broadcast envía el mensaje a todos los clientes conectados
func (manager *Manager) broadcast(message []byte) {
	for _, client := range manager.Clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(manager.Clients, client.ID)
		}
	}
}
