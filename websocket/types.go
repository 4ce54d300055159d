// websocket/types.go
package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sapdash/proyectos_datamart/database"
)

// Mensaje de control que envían los clientes del tablero
type Message struct {
	Type string `json:"type"`
}

// Snapshot es el estado del datamart que se difunde a los tableros
// conectados tras cada corrida exitosa del ETL
type Snapshot struct {
	Type      string                   `json:"type"`
	Timestamp time.Time                `json:"timestamp"`
	Summary   *database.SummaryMetrics `json:"summary,omitempty"`
	ETLStatus *database.ETLStatus      `json:"etlStatus,omitempty"`
}

// Cliente conectado al canal de actualizaciones
type Client struct {
	ID     string
	Socket *websocket.Conn
	Send   chan []byte
}

// Manager administra las conexiones WebSocket del tablero
type Manager struct {
	Clients    map[string]*Client
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

// Configuración del upgrader WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // El tablero se sirve desde otro origen
	},
}
