package service

import "attrition-risk/internal/domain"

type recommendationRule struct {
	when           func(p domain.EmployeeProfile) bool
	recommendation domain.Recommendation
}

// recommendationRules se evalua en este orden fijo; no se reordena por severidad.
var recommendationRules = []recommendationRule{
	{
		when: func(p domain.EmployeeProfile) bool { return p.JobSatisfaction <= 2 },
		recommendation: domain.Recommendation{
			Priority:    domain.PriorityCritical,
			Action:      "Immediate Manager Intervention",
			Description: "Schedule urgent 1-on-1 meeting to address satisfaction concerns",
			Timeline:    "Within 24 hours",
			Impact:      domain.ImpactHigh,
		},
	},
	{
		when: func(p domain.EmployeeProfile) bool { return p.WorkLifeBalance <= 2 },
		recommendation: domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Action:      "Flexible Work Implementation",
			Description: "Offer remote work options and flexible scheduling immediately",
			Timeline:    "Within 1 week",
			Impact:      domain.ImpactHigh,
		},
	},
	{
		when: func(p domain.EmployeeProfile) bool { return p.MonthlyIncome < 4000 },
		recommendation: domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Action:      "Compensation Review",
			Description: "Conduct market analysis and salary adjustment",
			Timeline:    "Within 2 weeks",
			Impact:      domain.ImpactMedium,
		},
	},
	{
		when: func(p domain.EmployeeProfile) bool { return p.FrequentOvertime },
		recommendation: domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Action:      "Workload Redistribution",
			Description: "Analyze team capacity and redistribute tasks",
			Timeline:    "Within 1 week",
			Impact:      domain.ImpactMedium,
		},
	},
}

// Recommend genera las acciones sugeridas para el perfil. Depende solo del perfil,
// no del score: dos perfiles con scores muy distintos pueden recibir la misma lista.
func Recommend(p domain.EmployeeProfile) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(recommendationRules))
	for _, r := range recommendationRules {
		if r.when(p) {
			out = append(out, r.recommendation)
		}
	}
	return out
}
