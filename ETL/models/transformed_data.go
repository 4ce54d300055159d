package models

// TransformedData agrupa el resultado de la fase Transform,
// listo para la fase Load (dimensiones primero, hechos después)
type TransformedData struct {
	Projects   []ProjectDimension
	Times      []TimeDimension
	Customers  []CustomerDimension
	Solutions  []SolutionDimension
	Waves      []WaveDimension
	Partners   []PartnerDimension
	Industries []IndustryDimension
	RiskStates []RiskStatusDimension
	Facts      []ProjectFact
}

// TotalDimensionRows devuelve el total de filas de dimensión del lote
func (d *TransformedData) TotalDimensionRows() int {
	return len(d.Projects) + len(d.Times) + len(d.Customers) +
		len(d.Solutions) + len(d.Waves) + len(d.Partners) +
		len(d.Industries) + len(d.RiskStates)
}
