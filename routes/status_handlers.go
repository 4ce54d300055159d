// routes/status_handlers.go
package routes

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/sapdash/proyectos_datamart/database"
)

// GetSummaryHandler responde los KPIs globales del datamart
func GetSummaryHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.LoadSummaryMetrics(db)
		if err != nil {
			log.Printf("❌ Error al consultar las métricas de resumen: %v", err)
			http.Error(w, "Error al obtener el resumen", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
		}
	}
}

// GetETLStatusHandler responde el estado de la última corrida del ETL
func GetETLStatusHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := database.LoadETLStatus(db)
		if err != nil {
			log.Printf("❌ Error al consultar el journal del ETL: %v", err)
			http.Error(w, "Error al obtener el estado del ETL", http.StatusInternalServerError)
			return
		}
		if status == nil {
			http.Error(w, "Sin corridas registradas", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
		}
	}
}
