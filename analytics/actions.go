package analytics

import (
	"sort"

	"github.com/sapdash/proyectos_datamart/database"
)

// PriorityActions son las listas de acción inmediata de la vista de
// retrasos: los críticos a escalar ya y los moderados a vigilar
type PriorityActions struct {
	Criticos  []database.ExceptionRow `json:"criticos"`
	Moderados []database.ExceptionRow `json:"moderados"`
}

// ComputePriorityActions selecciona los 5 proyectos más retrasados de
// cada banda de atención: críticos (>31 días) y moderados (16-31 días)
func ComputePriorityActions(rows []database.ExceptionRow) PriorityActions {
	var criticos, moderados []database.ExceptionRow

	for _, r := range rows {
		switch {
		case r.DiasRetraso > 31:
			criticos = append(criticos, r)
		case r.DiasRetraso > 15:
			moderados = append(moderados, r)
		}
	}

	byDelayDesc := func(s []database.ExceptionRow) {
		sort.Slice(s, func(i, j int) bool {
			if s[i].DiasRetraso != s[j].DiasRetraso {
				return s[i].DiasRetraso > s[j].DiasRetraso
			}
			return s[i].ImpactoVenta > s[j].ImpactoVenta
		})
	}
	byDelayDesc(criticos)
	byDelayDesc(moderados)

	if len(criticos) > 5 {
		criticos = criticos[:5]
	}
	if len(moderados) > 5 {
		moderados = moderados[:5]
	}

	return PriorityActions{Criticos: criticos, Moderados: moderados}
}
