// websocket/constants.go
package websocket

import (
	"time"
)

// Constantes de la conexión WebSocket
const (
	// Tiempo máximo de escritura hacia el cliente
	writeWait = 10 * time.Second

	// Tiempo máximo de espera del pong del cliente
	pongWait = 60 * time.Second

	// Período de envío de pings
	pingPeriod = (pongWait * 9) / 10

	// Tamaño máximo de mensaje entrante
	maxMessageSize = 4 * 1024 // 4KB

	// Los snapshots por encima de este tamaño se comprimen con snappy
	// y se envían como mensaje binario
	compressThreshold = 8 * 1024 // 8KB
)
