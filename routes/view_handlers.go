// routes/view_handlers.go
package routes

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/sapdash/proyectos_datamart/analytics"
	"github.com/sapdash/proyectos_datamart/database"
)

// RetrasosResponse es el payload de la vista operativa de retrasos
type RetrasosResponse struct {
	KPIs             analytics.OperationalKPIs `json:"kpis"`
	PorPartner       []analytics.GroupStat     `json:"porPartner"`
	PorRegion        []analytics.GroupStat     `json:"porRegion"`
	TendenciaMensual []analytics.TrendPoint    `json:"tendenciaMensual"`
	Acciones         analytics.PriorityActions `json:"acciones"`
	Partners         []string                  `json:"partners"`
	Regiones         []string                  `json:"regiones"`
}

// ParadasResponse es el payload de la vista ejecutiva de paradas
type ParadasResponse struct {
	KPIs                analytics.ExecutiveKPIs      `json:"kpis"`
	PorMotivo           []analytics.GroupStat        `json:"porMotivo"`
	PorIndustria        []analytics.GroupStat        `json:"porIndustria"`
	PorSolucion         []analytics.GroupStat        `json:"porSolucion"`
	PorRangoImpacto     []analytics.GroupStat        `json:"porRangoImpacto"`
	TopImpacto          []database.ExceptionRow      `json:"topImpacto"`
	ComparativaRegiones []analytics.RegionComparison `json:"comparativaRegiones"`
	TendenciaMensual    []analytics.TrendPoint       `json:"tendenciaMensual"`
	TendenciaTrimestral []analytics.TrendPoint       `json:"tendenciaTrimestral"`
	TendenciaAnual      []analytics.TrendPoint       `json:"tendenciaAnual"`
	RegionPorEstado     analytics.PivotTable         `json:"regionPorEstado"`
	CriticidadSeveridad analytics.PivotTable         `json:"criticidadSeveridad"`
}

// GetProyectosHandler responde la tabla general de hechos limpios,
// la vista de partida del tablero antes de filtrar excepciones
func GetProyectosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.LoadProjectFacts(db)
		if err != nil {
			log.Printf("❌ Error al consultar los proyectos: %v", err)
			http.Error(w, "Error al obtener los proyectos", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Enviados %d proyectos", len(rows))
	}
}

// GetRetrasosHandler responde la vista operativa: KPIs, agregaciones,
// tendencia mensual y acciones prioritarias. Acepta el parámetro "hoy"
// (formato 2006-01-02) para recalcular los retrasos contra otra fecha
func GetRetrasosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.LoadExceptions(db)
		if err != nil {
			log.Printf("❌ Error al consultar las excepciones: %v", err)
			http.Error(w, "Error al obtener las excepciones", http.StatusInternalServerError)
			return
		}

		// Recalculamos contra la fecha de referencia elegida
		if hoyStr := r.URL.Query().Get("hoy"); hoyStr != "" {
			hoy, err := time.Parse("2006-01-02", hoyStr)
			if err != nil {
				http.Error(w, "Formato de fecha no válido, se espera AAAA-MM-DD", http.StatusBadRequest)
				return
			}
			rows = analytics.RecomputeDelays(rows, hoy)
		}

		rows = analytics.Apply(rows, parseFilter(r))

		response := RetrasosResponse{
			KPIs:             analytics.ComputeOperationalKPIs(rows),
			PorPartner:       analytics.ByPartner(rows),
			PorRegion:        analytics.ByRegion(rows),
			TendenciaMensual: analytics.MonthlyTrend(rows),
			Acciones:         analytics.ComputePriorityActions(rows),
			Partners:         analytics.Partners(rows),
			Regiones:         analytics.Regions(rows),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Vista de retrasos calculada sobre %d proyectos", len(rows))
	}
}

// GetParadasHandler responde la vista ejecutiva: KPIs, distribuciones,
// top de impacto, comparativa regional, tendencias y tablas pivote
func GetParadasHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.LoadExceptions(db)
		if err != nil {
			log.Printf("❌ Error al consultar las excepciones: %v", err)
			http.Error(w, "Error al obtener las excepciones", http.StatusInternalServerError)
			return
		}

		rows = analytics.Apply(rows, parseFilter(r))

		response := ParadasResponse{
			KPIs:                analytics.ComputeExecutiveKPIs(rows),
			PorMotivo:           analytics.ByReasonCategory(rows),
			PorIndustria:        analytics.ByIndustry(rows),
			PorSolucion:         analytics.BySolution(rows),
			PorRangoImpacto:     analytics.ByImpactRange(rows),
			TopImpacto:          analytics.TopByImpact(rows),
			ComparativaRegiones: analytics.CompareRegions(rows),
			TendenciaMensual:    analytics.MonthlyTrend(rows),
			TendenciaTrimestral: analytics.QuarterlyTrend(rows),
			TendenciaAnual:      analytics.YearlyTrend(rows),
			RegionPorEstado:     analytics.RegionByStatusFlag(rows),
			CriticidadSeveridad: analytics.CriticalityBySeverity(rows),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("❌ Error al codificar el JSON: %v", err)
			http.Error(w, "Error al formar la respuesta", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Vista de paradas calculada sobre %d proyectos", len(rows))
	}
}
