package service

import "attrition-risk/internal/domain"

// AssessEmployee es el punto de entrada puro: score base, calibracion contra la poblacion
// (opcional), banda de confianza y recomendaciones.
func AssessEmployee(p domain.EmployeeProfile, population []domain.PopulationRecord) (domain.RiskAssessment, error) {
	var stats *domain.PopulationStats
	if len(population) > 0 {
		stats = ComputePopulationStats(population)
	}
	return AssessWithStats(p, stats)
}

// AssessWithStats igual que AssessEmployee pero con agregados ya calculados.
func AssessWithStats(p domain.EmployeeProfile, stats *domain.PopulationStats) (domain.RiskAssessment, error) {
	if err := p.Validate(); err != nil {
		return domain.RiskAssessment{}, err
	}

	base := DefaultRiskEngine.Score(p)
	calibrated, cal := Calibrate(base, p, stats)
	score, lower, upper := ConfidenceBand(calibrated)

	return domain.RiskAssessment{
		RiskScore:       score,
		BaseScore:       base,
		ConfidenceLower: lower,
		ConfidenceUpper: upper,
		ConfidenceLevel: domain.ConfidenceLevel,
		RiskLevel:       RiskLevel(score),
		Factors:         DefaultRiskEngine.Breakdown(p),
		Calibration:     cal,
		Recommendations: Recommend(p),
	}, nil
}
