package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"attrition-risk/internal/domain"
)

const (
	minSyntheticAge = 22
	maxSyntheticAge = 65

	hoursPerMonth = 160
	hoursPerDay   = 8

	attritionThreshold = 0.4
	propensityNoise    = 0.1
)

var (
	syntheticDepartments = []string{"Sales", "Research & Development", "Human Resources", "Marketing", "Finance", "IT"}

	syntheticRoles = map[string][]string{
		"Sales":                  {"Sales Executive", "Sales Representative", "Sales Manager", "Account Manager"},
		"Research & Development": {"Research Scientist", "Laboratory Technician", "Research Director", "Data Scientist"},
		"Human Resources":        {"HR Specialist", "HR Manager", "Recruiter", "Training Coordinator"},
		"Marketing":              {"Marketing Specialist", "Marketing Manager", "Digital Marketer", "Content Creator"},
		"Finance":                {"Financial Analyst", "Accountant", "Finance Manager", "Budget Analyst"},
		"IT":                     {"Software Engineer", "System Administrator", "IT Support", "DevOps Engineer"},
	}

	educationFields = []string{"Life Sciences", "Medical", "Marketing", "Technical Degree", "Human Resources", "Other"}
	maritalStatuses = []string{"Single", "Married", "Divorced"}
	genders         = []string{"Male", "Female"}

	// Banda salarial anual por nivel educativo.
	salaryBands = map[int][2]int{
		1: {25000, 35000},
		2: {30000, 45000},
		3: {40000, 60000},
		4: {55000, 85000},
		5: {75000, 120000},
	}

	educationTable       = newWeightedTable([]int{1, 2, 3, 4, 5}, []float64{5, 15, 30, 35, 15})
	jobSatisfactionTable = newWeightedTable([]int{1, 2, 3, 4}, []float64{10, 20, 45, 25})
	environmentTable     = newWeightedTable([]int{1, 2, 3, 4}, []float64{8, 18, 50, 24})
	involvementTable     = newWeightedTable([]int{1, 2, 3, 4}, []float64{5, 15, 60, 20})
	workLifeTable        = newWeightedTable([]int{1, 2, 3, 4}, []float64{5, 20, 55, 20})
	relationshipTable    = newWeightedTable([]int{1, 2, 3, 4}, []float64{8, 15, 52, 25})
	performanceTable     = newWeightedTable([]int{1, 2, 3, 4}, []float64{5, 15, 65, 15})
	overtimeTable        = newWeightedTable([]bool{true, false}, []float64{30, 70})
	travelTable          = newWeightedTable([]string{"Non-Travel", "Travel_Rarely", "Travel_Frequently"}, []float64{60, 30, 10})
	trainingTable        = newWeightedTable([]int{0, 1, 2, 3, 4, 5, 6}, []float64{20, 25, 20, 15, 10, 7, 3})
	stockOptionTable     = newWeightedTable([]int{0, 1, 2, 3}, []float64{60, 25, 10, 5})
)

// Generator produce poblaciones sinteticas etiquetadas. Con la misma semilla produce
// el mismo dataset. No es seguro para uso concurrente: cada goroutine necesita el suyo.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// GenerateSyntheticDataset crea n registros con un generador nuevo sembrado con seed.
func GenerateSyntheticDataset(n int, seed uint64) ([]domain.SyntheticEmployee, error) {
	return NewGenerator(seed).Generate(n)
}

// Generate devuelve exactamente n registros independientes entre si.
func (g *Generator) Generate(n int) ([]domain.SyntheticEmployee, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: dataset size must be positive, got %d", domain.ErrInvalidArgument, n)
	}
	out := make([]domain.SyntheticEmployee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.employee(i))
	}
	return out, nil
}

func (g *Generator) employee(index int) domain.SyntheticEmployee {
	r := g.rng

	age := clampInt(int(r.NormFloat64()*10+36), minSyntheticAge, maxSyntheticAge)
	maxTenure := age - minSyntheticAge

	dept := uniformChoice(r, syntheticDepartments)
	role := uniformChoice(r, syntheticRoles[dept])

	yearsAtCompany := clampInt(expInt(r, 5), 0, maxTenure)
	totalWorkingYears := min(max(yearsAtCompany, expInt(r, 8)), maxTenure)
	yearsInRole := clampInt(expInt(r, 3), 0, yearsAtCompany)
	yearsSincePromotion := clampInt(expInt(r, 2), 0, yearsAtCompany)
	yearsWithManager := clampInt(expInt(r, 2), 0, yearsAtCompany)

	education := educationTable.pick(r)
	income := monthlyIncome(r, education, totalWorkingYears, role)
	hourly := float64(income) / hoursPerMonth

	e := domain.SyntheticEmployee{
		EmployeeID:               fmt.Sprintf("EMP%04d", index+1),
		Age:                      age,
		Gender:                   uniformChoice(r, genders),
		MaritalStatus:            uniformChoice(r, maritalStatuses),
		Department:               dept,
		JobRole:                  role,
		YearsAtCompany:           yearsAtCompany,
		TotalWorkingYears:        totalWorkingYears,
		YearsInCurrentRole:       yearsInRole,
		YearsSinceLastPromotion:  yearsSincePromotion,
		YearsWithCurrManager:     yearsWithManager,
		Education:                education,
		EducationField:           uniformChoice(r, educationFields),
		DistanceFromHome:         clampInt(expInt(r, 10), 1, 50),
		MonthlyIncome:            income,
		HourlyRate:               int(hourly),
		DailyRate:                int(hourly * hoursPerDay),
		JobSatisfaction:          jobSatisfactionTable.pick(r),
		EnvironmentSatisfaction:  environmentTable.pick(r),
		JobInvolvement:           involvementTable.pick(r),
		WorkLifeBalance:          workLifeTable.pick(r),
		RelationshipSatisfaction: relationshipTable.pick(r),
		PerformanceRating:        performanceTable.pick(r),
		OverTime:                 overtimeTable.pick(r),
		BusinessTravel:           travelTable.pick(r),
		TrainingTimesLastYear:    trainingTable.pick(r),
		StockOptionLevel:         stockOptionTable.pick(r),
		JobLevel:                 clampInt(education+totalWorkingYears/5, 1, 5),
		NumCompaniesWorked:       clampInt(poisson(r, 2), 1, 9),
		PercentSalaryHike:        11 + r.IntN(15),
	}

	e.AttritionPropensity = AttritionPropensity(e) + uniformRange(r, -propensityNoise, propensityNoise)
	e.Attrition = e.AttritionPropensity > attritionThreshold
	return e
}

// monthlyIncome sortea dentro de la banda educativa y aplica el multiplicador de experiencia.
func monthlyIncome(r *rand.Rand, education, totalWorkingYears int, role string) int {
	band := salaryBands[education]
	lo, hi := band[0]/12, band[1]/12
	base := lo + r.IntN(hi-lo+1)

	multiplier := 1 + float64(totalWorkingYears)*0.02
	if strings.Contains(role, "Manager") || strings.Contains(role, "Director") {
		multiplier *= 1.3
	}
	return int(float64(base) * multiplier)
}

// AttritionPropensity es la parte determinista de la propension latente de baja.
// Es independiente de los pesos de RiskEngine.
func AttritionPropensity(e domain.SyntheticEmployee) float64 {
	var p float64

	switch {
	case e.JobSatisfaction <= 2:
		p += 0.4
	case e.JobSatisfaction == 3:
		p += 0.1
	}
	if e.WorkLifeBalance <= 2 {
		p += 0.3
	}
	if e.OverTime {
		p += 0.2
	}
	if e.DistanceFromHome > 20 {
		p += 0.15
	}

	expectedIncome := float64(e.Education*1000 + e.TotalWorkingYears*200)
	if float64(e.MonthlyIncome) < expectedIncome*0.8 {
		p += 0.2
	}
	if e.YearsSinceLastPromotion > 5 {
		p += 0.15
	}

	switch {
	case e.Age < 25:
		p += 0.1
	case e.Age > 50:
		p -= 0.1
	}
	if e.PerformanceRating <= 2 {
		p += 0.1
	}
	return p
}

// SummarizeDataset calcula las estadisticas que imprime el generador.
func SummarizeDataset(records []domain.SyntheticEmployee) domain.DatasetSummary {
	s := domain.DatasetSummary{TotalEmployees: len(records)}
	if len(records) == 0 {
		return s
	}
	depts := make(map[string]struct{})
	roles := make(map[string]struct{})
	var leavers int
	var ageSum, incomeSum float64
	for _, e := range records {
		if e.Attrition {
			leavers++
		}
		ageSum += float64(e.Age)
		incomeSum += float64(e.MonthlyIncome)
		depts[e.Department] = struct{}{}
		roles[e.JobRole] = struct{}{}
	}
	n := float64(len(records))
	s.AttritionRate = float64(leavers) / n * 100
	s.AverageAge = ageSum / n
	s.AverageIncome = incomeSum / n
	s.Departments = len(depts)
	s.JobRoles = len(roles)
	return s
}
