package service

import (
	"math"

	"attrition-risk/internal/domain"
)

const (
	ageGapThreshold  = 10.0
	ageGapAdjustment = 5.0
)

// ComputePopulationStats agrega el dataset de referencia una sola vez.
// Una columna se considera presente si al menos un registro la trae; las filas con
// departamento pero sin etiqueta de baja cuentan como "se quedo".
func ComputePopulationStats(records []domain.PopulationRecord) *domain.PopulationStats {
	stats := &domain.PopulationStats{Size: len(records)}
	var ageSum float64
	var ageCount int
	for _, r := range records {
		if r.Age != nil {
			ageSum += float64(*r.Age)
			ageCount++
		}
		if r.Department != nil {
			stats.HasDepartment = true
		}
		if r.Attrition != nil {
			stats.HasAttrition = true
		}
	}
	if ageCount > 0 {
		stats.HasAge = true
		stats.MeanAge = ageSum / float64(ageCount)
	}
	if !stats.HasDepartment || !stats.HasAttrition {
		return stats
	}

	stats.Departments = make(map[string]domain.DepartmentCounts)
	for _, r := range records {
		if r.Department == nil {
			continue
		}
		c := stats.Departments[*r.Department]
		c.Employees++
		if r.Attrition != nil && *r.Attrition {
			c.Leavers++
		}
		stats.Departments[*r.Department] = c
	}
	return stats
}

// Calibrate ajusta el score base con los agregados de la poblacion.
// El orden importa: el ajuste por edad se aplica antes de promediar con la tasa del
// departamento. No satura; eso lo hace la banda de confianza.
func Calibrate(base float64, p domain.EmployeeProfile, stats *domain.PopulationStats) (float64, domain.Calibration) {
	var cal domain.Calibration
	if stats == nil || stats.Size == 0 {
		return base, cal
	}

	score := base
	if stats.HasAge {
		mean := stats.MeanAge
		cal.PopulationMeanAge = &mean
		if math.Abs(float64(p.Age)-mean) > ageGapThreshold {
			score += ageGapAdjustment
			cal.AgeAdjusted = true
		}
	}

	if stats.HasDepartment && stats.HasAttrition {
		if c, ok := stats.Departments[p.Department]; ok && c.Employees > 0 {
			rate := c.Rate() * 100
			cal.DepartmentAttrRate = &rate
			cal.DepartmentBlended = true
			score = (score + rate) / 2
		}
	}
	return score, cal
}
