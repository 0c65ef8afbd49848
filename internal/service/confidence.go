package service

import "math"

const confidenceHalfWidth = 12.0

// ConfidenceBand satura el score en [0,100] y devuelve la banda simetrica de +-12 puntos.
// El nivel de 95 es una etiqueta, no se deriva estadisticamente.
func ConfidenceBand(score float64) (clamped, lower, upper float64) {
	clamped = clampScore(score)
	lower = math.Max(minRiskScore, clamped-confidenceHalfWidth)
	upper = math.Min(maxRiskScore, clamped+confidenceHalfWidth)
	return clamped, lower, upper
}
