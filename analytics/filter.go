package analytics

import (
	"sort"
	"strings"

	"github.com/sapdash/proyectos_datamart/database"
)

// PageSize es el tamaño de página de las tablas de detalle
const PageSize = 100

// Filter son los filtros combinables de la tabla de excepciones
type Filter struct {
	Partner  string
	Region   string
	Severity string
	Search   string
	MinDays  int
}

// Page es una página de resultados con metadatos de paginación
type Page struct {
	Rows       []database.ExceptionRow `json:"rows"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
	TotalRows  int                     `json:"totalRows"`
}

// Matches indica si la fila pasa todos los filtros activos
func (f Filter) Matches(r database.ExceptionRow) bool {
	if f.Partner != "" && r.MainPartner != f.Partner {
		return false
	}
	if f.Region != "" && r.CustomerRegion != f.Region {
		return false
	}
	if f.Severity != "" && OperationalSeverity(r.DiasRetraso) != f.Severity {
		return false
	}
	if f.MinDays > 0 && r.DiasRetraso < f.MinDays {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(r.ProjectName), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply filtra las filas con los criterios combinados
func Apply(rows []database.ExceptionRow, f Filter) []database.ExceptionRow {
	out := make([]database.ExceptionRow, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate corta una página de 100 filas; las páginas empiezan en 1 y
// los valores fuera de rango se ajustan al límite más cercano
func Paginate(rows []database.ExceptionRow, page int) Page {
	total := len(rows)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Rows:       rows[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalRows:  total,
	}
}

// Partners devuelve la lista ordenada de partners presentes en las filas,
// para poblar los selectores de filtro
func Partners(rows []database.ExceptionRow) []string {
	return distinct(rows, func(r database.ExceptionRow) string { return r.MainPartner })
}

// Regions devuelve la lista ordenada de regiones presentes en las filas
func Regions(rows []database.ExceptionRow) []string {
	return distinct(rows, func(r database.ExceptionRow) string { return r.CustomerRegion })
}

func distinct(rows []database.ExceptionRow, key keyFunc) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		v := key(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
