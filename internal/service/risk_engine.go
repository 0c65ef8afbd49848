package service

import (
	"math"

	"attrition-risk/internal/domain"
)

const (
	maxRiskScore = 100.0
	minRiskScore = 0.0

	criticalRiskThreshold = 70.0
	moderateRiskThreshold = 40.0
)

// RiskEngine calcula el score base de riesgo de fuga con el modelo aditivo de reglas.
// No guarda estado: se puede usar en paralelo sin sincronizacion.
type RiskEngine struct{}

// DefaultRiskEngine permite uso directo sin instanciar.
var DefaultRiskEngine = RiskEngine{}

// Score suma las contribuciones de todos los factores y satura en 100.
// Los ordinales fuera de rango deben rechazarse antes (ver EmployeeProfile.Validate).
func (RiskEngine) Score(p domain.EmployeeProfile) float64 {
	var total float64
	for _, f := range riskFactors {
		total += f.contribution(p)
	}
	return math.Min(total, maxRiskScore)
}

// Breakdown devuelve los puntos de cada factor en el orden de evaluacion, sin saturar.
func (RiskEngine) Breakdown(p domain.EmployeeProfile) []domain.FactorContribution {
	out := make([]domain.FactorContribution, 0, len(riskFactors))
	for _, f := range riskFactors {
		out = append(out, domain.FactorContribution{Factor: f.name, Points: f.contribution(p)})
	}
	return out
}

// RiskLevel clasifica un score final en CRITICAL / MODERATE / LOW.
func RiskLevel(score float64) string {
	switch {
	case score >= criticalRiskThreshold:
		return domain.RiskLevelCritical
	case score >= moderateRiskThreshold:
		return domain.RiskLevelModerate
	default:
		return domain.RiskLevelLow
	}
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return minRiskScore
	}
	return math.Max(minRiskScore, math.Min(maxRiskScore, v))
}
