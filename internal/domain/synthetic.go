package domain

// SyntheticEmployee es un registro del generador de poblaciones sinteticas.
// Attrition sale de la regla interna del generador, no del motor de riesgo.
type SyntheticEmployee struct {
	EmployeeID               string  `json:"EmployeeID"`
	Age                      int     `json:"Age"`
	Attrition                bool    `json:"Attrition"`
	BusinessTravel           string  `json:"BusinessTravel"`
	DailyRate                int     `json:"DailyRate"`
	Department               string  `json:"Department"`
	DistanceFromHome         int     `json:"DistanceFromHome"`
	Education                int     `json:"Education"`
	EducationField           string  `json:"EducationField"`
	EnvironmentSatisfaction  int     `json:"EnvironmentSatisfaction"`
	Gender                   string  `json:"Gender"`
	HourlyRate               int     `json:"HourlyRate"`
	JobInvolvement           int     `json:"JobInvolvement"`
	JobLevel                 int     `json:"JobLevel"`
	JobRole                  string  `json:"JobRole"`
	JobSatisfaction          int     `json:"JobSatisfaction"`
	MaritalStatus            string  `json:"MaritalStatus"`
	MonthlyIncome            int     `json:"MonthlyIncome"`
	NumCompaniesWorked       int     `json:"NumCompaniesWorked"`
	OverTime                 bool    `json:"OverTime"`
	PercentSalaryHike        int     `json:"PercentSalaryHike"`
	PerformanceRating        int     `json:"PerformanceRating"`
	RelationshipSatisfaction int     `json:"RelationshipSatisfaction"`
	StockOptionLevel         int     `json:"StockOptionLevel"`
	TotalWorkingYears        int     `json:"TotalWorkingYears"`
	TrainingTimesLastYear    int     `json:"TrainingTimesLastYear"`
	WorkLifeBalance          int     `json:"WorkLifeBalance"`
	YearsAtCompany           int     `json:"YearsAtCompany"`
	YearsInCurrentRole       int     `json:"YearsInCurrentRole"`
	YearsSinceLastPromotion  int     `json:"YearsSinceLastPromotion"`
	YearsWithCurrManager     int     `json:"YearsWithCurrManager"`
	AttritionPropensity      float64 `json:"AttritionPropensity"`
}

// Profile proyecta el registro sintetico al perfil que consume el motor de riesgo.
func (e SyntheticEmployee) Profile() EmployeeProfile {
	return EmployeeProfile{
		Age:               e.Age,
		YearsAtCompany:    e.YearsAtCompany,
		Department:        e.Department,
		JobSatisfaction:   e.JobSatisfaction,
		WorkLifeBalance:   e.WorkLifeBalance,
		MonthlyIncome:     float64(e.MonthlyIncome),
		FrequentOvertime:  e.OverTime,
		PerformanceRating: e.PerformanceRating,
	}
}

// PopulationRecord proyecta el registro al formato de dataset de referencia.
func (e SyntheticEmployee) PopulationRecord() PopulationRecord {
	age := e.Age
	dept := e.Department
	attr := e.Attrition
	sat := e.JobSatisfaction
	wlb := e.WorkLifeBalance
	ot := e.OverTime
	years := e.YearsAtCompany
	income := float64(e.MonthlyIncome)
	return PopulationRecord{
		Age:             &age,
		Department:      &dept,
		Attrition:       &attr,
		JobSatisfaction: &sat,
		WorkLifeBalance: &wlb,
		OverTime:        &ot,
		YearsAtCompany:  &years,
		MonthlyIncome:   &income,
	}
}

// DatasetSummary resume un dataset sintetico generado.
type DatasetSummary struct {
	TotalEmployees int     `json:"total_employees"`
	AttritionRate  float64 `json:"attrition_rate"`
	AverageAge     float64 `json:"average_age"`
	AverageIncome  float64 `json:"average_monthly_income"`
	Departments    int     `json:"departments"`
	JobRoles       int     `json:"job_roles"`
}
