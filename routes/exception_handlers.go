// routes/exception_handlers.go
package routes

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/sapdash/proyectos_datamart/analytics"
	"github.com/sapdash/proyectos_datamart/database"
)

// parseFilter arma el filtro de excepciones desde los parámetros de la URL
func parseFilter(r *http.Request) analytics.Filter {
	query := r.URL.Query()

	f := analytics.Filter{
		Partner:  query.Get("partner"),
		Region:   query.Get("region"),
		Severity: query.Get("severity"),
		Search:   query.Get("search"),
	}

	if minDaysStr := query.Get("minDays"); minDaysStr != "" {
		if minDays, err := strconv.Atoi(minDaysStr); err == nil {
			f.MinDays = minDays
		}
	}

	return f
}

// GetExceptionsHandler responde la tabla de excepciones filtrada y paginada
func GetExceptionsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.LoadExceptions(db)
		if err != nil {
			log.Printf("❌ Error al consultar las excepciones: %v", err)
			http.Error(w, "Error al obtener las excepciones", http.StatusInternalServerError)
			return
		}

		filtered := analytics.Apply(rows, parseFilter(r))

		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			if p, err := strconv.Atoi(pageStr); err == nil {
				page = p
			}
		}

		response := analytics.Paginate(filtered, page)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Enviadas %d de %d excepciones (página %d)",
			len(response.Rows), response.TotalRows, response.Page)
	}
}

// ExportExceptionsHandler exporta las excepciones filtradas como CSV,
// ordenadas por días de retraso descendente
func ExportExceptionsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.LoadExceptions(db)
		if err != nil {
			log.Printf("❌ Error al consultar las excepciones: %v", err)
			http.Error(w, "Error al obtener las excepciones", http.StatusInternalServerError)
			return
		}

		filtered := analytics.Apply(rows, parseFilter(r))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="excepciones.csv"`)

		writer := csv.NewWriter(w)
		header := []string{
			"ProjectID", "ProjectName", "ProjectStatus", "DiasRetraso",
			"CriticalityLevel", "StatusReasonCategory", "ImpactoVenta",
			"CustomerRegion", "MainPartner", "IndustryName", "SolutionArea",
		}
		if err := writer.Write(header); err != nil {
			log.Printf("❌ Error al escribir el CSV: %v", err)
			return
		}

		for _, row := range filtered {
			record := []string{
				strconv.Itoa(row.ProjectID),
				row.ProjectName,
				row.ProjectStatus,
				strconv.Itoa(row.DiasRetraso),
				row.CriticalityLevel,
				row.StatusReasonCategory,
				fmt.Sprintf("%.2f", row.ImpactoVenta),
				row.CustomerRegion,
				row.MainPartner,
				row.IndustryName,
				row.SolutionArea,
			}
			if err := writer.Write(record); err != nil {
				log.Printf("❌ Error al escribir el CSV: %v", err)
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			log.Printf("❌ Error al cerrar el CSV: %v", err)
			return
		}

		log.Printf("✅ Exportadas %d excepciones a CSV", len(filtered))
	}
}
