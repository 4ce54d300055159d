// routes/api_routes.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sapdash/proyectos_datamart/websocket"
)

// SetupRoutes configura las rutas del API y el canal WebSocket
func SetupRoutes(router *mux.Router, db *sql.DB, wsManager *websocket.Manager) {
	// Aplicamos el middleware CORS
	router.Use(corsMiddleware)

	// Canal de actualizaciones en vivo
	router.HandleFunc("/ws", wsManager.HandleConnections)

	// Tabla general de proyectos
	router.HandleFunc("/api/proyectos", GetProyectosHandler(db)).Methods("GET", "OPTIONS")

	// Tabla de excepciones con filtros y paginación
	router.HandleFunc("/api/exceptions", GetExceptionsHandler(db)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/exceptions/export", ExportExceptionsHandler(db)).Methods("GET", "OPTIONS")

	// Vistas analíticas del tablero
	router.HandleFunc("/api/retrasos", GetRetrasosHandler(db)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/paradas", GetParadasHandler(db)).Methods("GET", "OPTIONS")

	// Métricas globales y estado del ETL
	router.HandleFunc("/api/summary", GetSummaryHandler(db)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/etl/status", GetETLStatusHandler(db)).Methods("GET", "OPTIONS")
}

// corsMiddleware habilita las peticiones del tablero desde otro origen
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
