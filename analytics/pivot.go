package analytics

import (
	"sort"

	"github.com/sapdash/proyectos_datamart/database"
)

// PivotTable es una tabla cruzada con totales por fila y columna
type PivotTable struct {
	Rows      []string                  `json:"rows"`
	Columns   []string                  `json:"columns"`
	Cells     map[string]map[string]int `json:"cells"`
	RowTotals map[string]int            `json:"rowTotals"`
	ColTotals map[string]int            `json:"colTotals"`
	Total     int                       `json:"total"`
}

func buildPivot(rows []database.ExceptionRow, rowKey, colKey keyFunc) PivotTable {
	p := PivotTable{
		Cells:     make(map[string]map[string]int),
		RowTotals: make(map[string]int),
		ColTotals: make(map[string]int),
	}
	colSeen := make(map[string]bool)

	for _, r := range rows {
		rk := rowKey(r)
		if rk == "" {
			rk = "No Especificado"
		}
		ck := colKey(r)
		if ck == "" {
			ck = "No Especificado"
		}

		if _, ok := p.Cells[rk]; !ok {
			p.Cells[rk] = make(map[string]int)
			p.Rows = append(p.Rows, rk)
		}
		if !colSeen[ck] {
			colSeen[ck] = true
			p.Columns = append(p.Columns, ck)
		}

		p.Cells[rk][ck]++
		p.RowTotals[rk]++
		p.ColTotals[ck]++
		p.Total++
	}

	sort.Strings(p.Rows)
	sort.Strings(p.Columns)
	return p
}

// RegionByStatusFlag cruza región del cliente contra el estado
// normalizado del proyecto
func RegionByStatusFlag(rows []database.ExceptionRow) PivotTable {
	return buildPivot(rows,
		func(r database.ExceptionRow) string { return r.CustomerRegion },
		func(r database.ExceptionRow) string { return r.ProjectStatusFlag })
}

// CriticalityBySeverity cruza la criticidad almacenada contra la banda
// ejecutiva de severidad
func CriticalityBySeverity(rows []database.ExceptionRow) PivotTable {
	return buildPivot(rows,
		func(r database.ExceptionRow) string { return r.CriticalityLevel },
		func(r database.ExceptionRow) string { return ExecutiveSeverity(r.DiasRetraso) })
}
