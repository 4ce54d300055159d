package transform

import (
	"hash/fnv"
	"strings"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// RiskDimensionProcessor construye las filas de Dim_Riesgo_Estado
// a partir de las combinaciones distintas de estado de riesgo de los proyectos
type RiskDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewRiskDimensionProcessor crea un nuevo RiskDimensionProcessor
func NewRiskDimensionProcessor(logger *utils.ETLLogger) *RiskDimensionProcessor {
	return &RiskDimensionProcessor{logger: logger}
}

// Process genera una fila de Dim_Riesgo_Estado por cada combinación
// distinta de (escalación, motivo, estado del partner, banderas)
func (p *RiskDimensionProcessor) Process(projects []models.ProjectStaging) []models.RiskStatusDimension {
	seen := make(map[int]bool)
	var dims []models.RiskStatusDimension

	for _, proj := range projects {
		id := RiskStatusID(proj)
		if seen[id] {
			continue
		}
		seen[id] = true

		dims = append(dims, models.RiskStatusDimension{
			RiskStatusID:      id,
			EscalationLevel:   defaultIfEmpty(proj.EscalationLevel),
			StatusReason:      defaultIfEmpty(proj.StatusReason),
			WavePartnerStatus: defaultIfEmpty(proj.WavePartnerStatus),
			StatusMatch:       proj.StatusMatch,
			ManualOverride:    proj.ManualOverride,
		})
	}

	p.logger.Debug("Dim_Riesgo_Estado: %d combinaciones distintas", len(dims))
	return dims
}

// RiskStatusID calcula la clave determinística de la combinación de riesgo
// de un proyecto. La misma combinación produce siempre el mismo ID, lo que
// mantiene la carga idempotente entre corridas.
func RiskStatusID(p models.ProjectStaging) int {
	key := strings.Join([]string{
		defaultIfEmpty(p.EscalationLevel),
		defaultIfEmpty(p.StatusReason),
		defaultIfEmpty(p.WavePartnerStatus),
		boolKey(p.StatusMatch),
		boolKey(p.ManualOverride),
	}, "|")

	h := fnv.New32a()
	h.Write([]byte(key))

	// Limitamos el hash al rango positivo de int32 para la clave primaria
	return int(h.Sum32() & 0x7fffffff)
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
