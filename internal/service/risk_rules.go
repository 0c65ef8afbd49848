package service

import "attrition-risk/internal/domain"

// scoreRule es un par (predicado, puntos). Dentro de un factor gana la primera regla que aplica.
type scoreRule struct {
	when   func(p domain.EmployeeProfile) bool
	points float64
}

// scoreFactor agrupa las reglas de un factor del modelo aditivo.
type scoreFactor struct {
	name   string
	rules  []scoreRule
	linear func(p domain.EmployeeProfile) float64
}

func (f scoreFactor) contribution(p domain.EmployeeProfile) float64 {
	if f.linear != nil {
		return f.linear(p)
	}
	for _, r := range f.rules {
		if r.when(p) {
			return r.points
		}
	}
	return 0
}

// departmentRisk es el incremento fijo por departamento.
var departmentRisk = map[string]float64{
	"Sales":       15,
	"Marketing":   12,
	"HR":          8,
	"Finance":     7,
	"Engineering": 5,
}

const unknownDepartmentRisk = 10.0

// DepartmentRisk devuelve el incremento del departamento (10 si no esta en la tabla).
func DepartmentRisk(department string) float64 {
	if v, ok := departmentRisk[department]; ok {
		return v
	}
	return unknownDepartmentRisk
}

// riskFactors mantiene el orden de evaluacion del modelo.
var riskFactors = []scoreFactor{
	{
		name: "age",
		rules: []scoreRule{
			{when: func(p domain.EmployeeProfile) bool { return p.Age < 25 || p.Age > 55 }, points: 15},
			{when: func(p domain.EmployeeProfile) bool { return p.Age >= 25 && p.Age <= 30 }, points: 10},
		},
	},
	{
		name: "tenure",
		rules: []scoreRule{
			{when: func(p domain.EmployeeProfile) bool { return p.YearsAtCompany < 2 }, points: 20},
			{when: func(p domain.EmployeeProfile) bool { return p.YearsAtCompany > 10 }, points: 5},
		},
	},
	{
		name:   "department",
		linear: func(p domain.EmployeeProfile) float64 { return DepartmentRisk(p.Department) },
	},
	{
		name:   "job_satisfaction",
		linear: func(p domain.EmployeeProfile) float64 { return float64(5-p.JobSatisfaction) * 12 },
	},
	{
		name:   "work_life_balance",
		linear: func(p domain.EmployeeProfile) float64 { return float64(5-p.WorkLifeBalance) * 10 },
	},
	{
		name: "income",
		rules: []scoreRule{
			{when: func(p domain.EmployeeProfile) bool { return p.MonthlyIncome < 3000 }, points: 15},
			{when: func(p domain.EmployeeProfile) bool { return p.MonthlyIncome < 5000 }, points: 8},
		},
	},
	{
		name: "overtime",
		rules: []scoreRule{
			{when: func(p domain.EmployeeProfile) bool { return p.FrequentOvertime }, points: 12},
		},
	},
	{
		name: "performance",
		rules: []scoreRule{
			{when: func(p domain.EmployeeProfile) bool { return p.PerformanceRating <= 2 }, points: 20},
			{when: func(p domain.EmployeeProfile) bool { return p.PerformanceRating == 3 }, points: 5},
		},
	},
}
