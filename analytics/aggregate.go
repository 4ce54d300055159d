package analytics

import (
	"sort"

	"github.com/sapdash/proyectos_datamart/database"
)

// GroupStat es una fila de agregación por categoría: cuántos proyectos
// y cuántos días de retraso acumulan
type GroupStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	SumDays    int     `json:"sumDays"`
	MeanDays   float64 `json:"meanDays"`
	SumImpacto float64 `json:"sumImpacto"`
}

// RegionComparison es una fila de la tabla comparativa por región de la
// vista ejecutiva
type RegionComparison struct {
	Region        string  `json:"region"`
	Proyectos     int     `json:"proyectos"`
	Retrasados    int     `json:"retrasados"`
	PctRetrasados float64 `json:"pctRetrasados"`
	PromedioDias  float64 `json:"promedioDias"`
	VentasRiesgo  float64 `json:"ventasRiesgo"`
}

type keyFunc func(database.ExceptionRow) string

func aggregate(rows []database.ExceptionRow, key keyFunc, topN int) []GroupStat {
	byName := make(map[string]*GroupStat)

	for _, r := range rows {
		name := key(r)
		if name == "" {
			name = "No Especificado"
		}
		g, ok := byName[name]
		if !ok {
			g = &GroupStat{Name: name}
			byName[name] = g
		}
		g.Count++
		g.SumDays += r.DiasRetraso
		g.SumImpacto += r.ImpactoVenta
	}

	out := make([]GroupStat, 0, len(byName))
	for _, g := range byName {
		if g.Count > 0 {
			g.MeanDays = round2(float64(g.SumDays) / float64(g.Count))
		}
		out = append(out, *g)
	}

	// Orden descendente por días acumulados, con el nombre como desempate
	sort.Slice(out, func(i, j int) bool {
		if out[i].SumDays != out[j].SumDays {
			return out[i].SumDays > out[j].SumDays
		}
		return out[i].Name < out[j].Name
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// delayedOnly descarta las filas sin retraso, como los proyectos pausados
// que todavía no pasaron su go-live
func delayedOnly(rows []database.ExceptionRow) []database.ExceptionRow {
	out := make([]database.ExceptionRow, 0, len(rows))
	for _, r := range rows {
		if r.DiasRetraso > 0 {
			out = append(out, r)
		}
	}
	return out
}

// ByPartner agrega los retrasos por partner principal (top 8)
// Cuenta solo proyectos retrasados
func ByPartner(rows []database.ExceptionRow) []GroupStat {
	return aggregate(delayedOnly(rows), func(r database.ExceptionRow) string { return r.MainPartner }, 8)
}

// ByRegion agrega los retrasos por región del cliente (top 8)
// Cuenta solo proyectos retrasados
func ByRegion(rows []database.ExceptionRow) []GroupStat {
	return aggregate(delayedOnly(rows), func(r database.ExceptionRow) string { return r.CustomerRegion }, 8)
}

// ByIndustry agrega por industria (top 12)
func ByIndustry(rows []database.ExceptionRow) []GroupStat {
	return aggregate(rows, func(r database.ExceptionRow) string { return r.IndustryName }, 12)
}

// BySolution agrega por área de solución (top 12)
func BySolution(rows []database.ExceptionRow) []GroupStat {
	return aggregate(rows, func(r database.ExceptionRow) string { return r.SolutionArea }, 12)
}

// ByReasonCategory agrega por categoría de motivo de parada (top 10)
func ByReasonCategory(rows []database.ExceptionRow) []GroupStat {
	return aggregate(rows, func(r database.ExceptionRow) string { return r.StatusReasonCategory }, 10)
}

// ByImpactRange agrega por rango de impacto comercial
func ByImpactRange(rows []database.ExceptionRow) []GroupStat {
	return aggregate(rows, func(r database.ExceptionRow) string { return ImpactRange(r.ImpactoVenta) }, 0)
}

// TopByImpact devuelve los 10 proyectos con mayor impacto comercial en riesgo
func TopByImpact(rows []database.ExceptionRow) []database.ExceptionRow {
	out := make([]database.ExceptionRow, len(rows))
	copy(out, rows)

	sort.Slice(out, func(i, j int) bool {
		if out[i].ImpactoVenta != out[j].ImpactoVenta {
			return out[i].ImpactoVenta > out[j].ImpactoVenta
		}
		return out[i].DiasRetraso > out[j].DiasRetraso
	})

	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// CompareRegions arma la tabla comparativa por región de la vista
// ejecutiva (top 15 por proyectos)
func CompareRegions(rows []database.ExceptionRow) []RegionComparison {
	type acc struct {
		proyectos  int
		retrasados int
		sumDays    int
		ventas     float64
	}
	byRegion := make(map[string]*acc)

	for _, r := range rows {
		region := r.CustomerRegion
		if region == "" {
			region = "No Especificado"
		}
		a, ok := byRegion[region]
		if !ok {
			a = &acc{}
			byRegion[region] = a
		}
		a.proyectos++
		if r.DiasRetraso > 0 {
			a.retrasados++
			a.sumDays += r.DiasRetraso
			a.ventas += r.ImpactoVenta
		}
	}

	out := make([]RegionComparison, 0, len(byRegion))
	for region, a := range byRegion {
		c := RegionComparison{
			Region:       region,
			Proyectos:    a.proyectos,
			Retrasados:   a.retrasados,
			VentasRiesgo: a.ventas,
		}
		if a.proyectos > 0 {
			c.PctRetrasados = round2(float64(a.retrasados) / float64(a.proyectos) * 100)
		}
		if a.retrasados > 0 {
			c.PromedioDias = round2(float64(a.sumDays) / float64(a.retrasados))
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Proyectos != out[j].Proyectos {
			return out[i].Proyectos > out[j].Proyectos
		}
		return out[i].Region < out[j].Region
	})

	if len(out) > 15 {
		out = out[:15]
	}
	return out
}
