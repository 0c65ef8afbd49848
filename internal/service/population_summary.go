package service

import (
	"sort"

	"attrition-risk/internal/domain"
)

// Benchmarks de industria usados por las tarjetas del dashboard.
const (
	industryAttritionRate = 12.5
	industryRetentionRate = 87.5

	highPriorityShare   = 15.0
	mediumPriorityShare = 8.0

	limitedGrowthYears = 5
)

const (
	RiskFactorLowSatisfaction = "Low Satisfaction"
	RiskFactorPoorWorkLife    = "Poor Work-Life"
	RiskFactorHighWorkload    = "High Workload"
	RiskFactorLimitedGrowth   = "Limited Growth"
)

// SummarizePopulation calcula las metricas agregadas de un dataset de referencia.
// Sin etiquetas de baja, los "en riesgo" se estiman con satisfaccion y balance bajos.
func SummarizePopulation(records []domain.PopulationRecord) domain.PopulationSummary {
	summary := domain.PopulationSummary{
		TotalEmployees: len(records),
		RiskFactors:    make(map[string]int),
	}

	var (
		leavers      int
		ageSum       float64
		ageCount     int
		hasSat       bool
		hasWLB       bool
		hasOT        bool
		hasTenure    bool
		lowSat       int
		poorWLB      int
		overtime     int
		longTenure   int
		departments  = make(map[string]*domain.DepartmentCounts)
		departmentsN []string
	)

	for _, r := range records {
		if r.Attrition != nil {
			summary.HasAttritionLabels = true
			if *r.Attrition {
				leavers++
			}
		}
		if r.Age != nil {
			ageSum += float64(*r.Age)
			ageCount++
		}
		if r.JobSatisfaction != nil {
			hasSat = true
			if *r.JobSatisfaction <= 2 {
				lowSat++
			}
		}
		if r.WorkLifeBalance != nil {
			hasWLB = true
			if *r.WorkLifeBalance <= 2 {
				poorWLB++
			}
		}
		if r.OverTime != nil {
			hasOT = true
			if *r.OverTime {
				overtime++
			}
		}
		if r.YearsAtCompany != nil {
			hasTenure = true
			if *r.YearsAtCompany > limitedGrowthYears {
				longTenure++
			}
		}
		if r.Department != nil {
			c, ok := departments[*r.Department]
			if !ok {
				c = &domain.DepartmentCounts{}
				departments[*r.Department] = c
				departmentsN = append(departmentsN, *r.Department)
			}
			c.Employees++
			if r.Attrition != nil && *r.Attrition {
				c.Leavers++
			}
		}
	}

	if hasSat {
		summary.RiskFactors[RiskFactorLowSatisfaction] = lowSat
	}
	if hasWLB {
		summary.RiskFactors[RiskFactorPoorWorkLife] = poorWLB
	}
	if hasOT {
		summary.RiskFactors[RiskFactorHighWorkload] = overtime
	}
	if hasTenure {
		summary.RiskFactors[RiskFactorLimitedGrowth] = longTenure
	}

	if summary.HasAttritionLabels {
		summary.AtRiskCount = leavers
	} else {
		summary.AtRiskCount = lowSat + poorWLB
	}

	if summary.TotalEmployees > 0 {
		summary.AttritionRate = float64(summary.AtRiskCount) / float64(summary.TotalEmployees) * 100
	}
	summary.RetentionRate = 100 - summary.AttritionRate
	summary.IndustryAttritionDelta = summary.AttritionRate - industryAttritionRate
	summary.IndustryRetentionDelta = summary.RetentionRate - industryRetentionRate
	summary.PriorityLevel = priorityLevel(summary.AttritionRate)

	if ageCount > 0 {
		avg := ageSum / float64(ageCount)
		summary.AverageAge = &avg
	}

	summary.DepartmentCount = len(departments)
	if summary.HasAttritionLabels {
		sort.Strings(departmentsN)
		for _, name := range departmentsN {
			c := departments[name]
			summary.DepartmentAttrition = append(summary.DepartmentAttrition, domain.DepartmentRate{
				Department:    name,
				Employees:     c.Employees,
				AttritionRate: c.Rate() * 100,
			})
		}
	}
	return summary
}

// priorityLevel clasifica la proporcion de empleados en riesgo.
func priorityLevel(atRiskShare float64) string {
	switch {
	case atRiskShare > highPriorityShare:
		return domain.PriorityHigh
	case atRiskShare > mediumPriorityShare:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
