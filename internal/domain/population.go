package domain

import (
	"fmt"
	"time"
)

// PopulationRecord es una fila del dataset de referencia. Un campo nil significa
// que la columna no viene en esa fila.
type PopulationRecord struct {
	Age             *int     `json:"age,omitempty"`
	Department      *string  `json:"department,omitempty"`
	Attrition       *bool    `json:"attrition,omitempty"`
	JobSatisfaction *int     `json:"job_satisfaction,omitempty"`
	WorkLifeBalance *int     `json:"work_life_balance,omitempty"`
	OverTime        *bool    `json:"overtime,omitempty"`
	YearsAtCompany  *int     `json:"years_at_company,omitempty"`
	MonthlyIncome   *float64 `json:"monthly_income,omitempty"`
}

// Validate rechaza valores imposibles en las columnas presentes.
func (r PopulationRecord) Validate() error {
	if r.Age != nil && (*r.Age < 0 || *r.Age > 120) {
		return fmt.Errorf("%w: age %d out of range", ErrInvalidInput, *r.Age)
	}
	if r.JobSatisfaction != nil && (*r.JobSatisfaction < 1 || *r.JobSatisfaction > 5) {
		return fmt.Errorf("%w: job_satisfaction %d out of range", ErrInvalidInput, *r.JobSatisfaction)
	}
	if r.WorkLifeBalance != nil && (*r.WorkLifeBalance < 1 || *r.WorkLifeBalance > 5) {
		return fmt.Errorf("%w: work_life_balance %d out of range", ErrInvalidInput, *r.WorkLifeBalance)
	}
	if r.YearsAtCompany != nil && *r.YearsAtCompany < 0 {
		return fmt.Errorf("%w: years_at_company must be non-negative", ErrInvalidInput)
	}
	if r.MonthlyIncome != nil && *r.MonthlyIncome < 0 {
		return fmt.Errorf("%w: monthly_income must be non-negative", ErrInvalidInput)
	}
	return nil
}

// Population agrupa un dataset subido por un usuario.
type Population struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// DepartmentCounts acumula empleados y bajas de un departamento.
type DepartmentCounts struct {
	Employees int `json:"employees"`
	Leavers   int `json:"leavers"`
}

// Rate devuelve la tasa de bajas en [0,1].
func (d DepartmentCounts) Rate() float64 {
	if d.Employees == 0 {
		return 0
	}
	return float64(d.Leavers) / float64(d.Employees)
}

// PopulationStats son los agregados que necesita la calibracion.
// Se calculan una vez por dataset y se pasan explicitamente.
type PopulationStats struct {
	Size          int                         `json:"size"`
	HasAge        bool                        `json:"has_age"`
	MeanAge       float64                     `json:"mean_age"`
	HasDepartment bool                        `json:"has_department"`
	HasAttrition  bool                        `json:"has_attrition"`
	Departments   map[string]DepartmentCounts `json:"departments,omitempty"`
}

type DepartmentRate struct {
	Department    string  `json:"department"`
	Employees     int     `json:"employees"`
	AttritionRate float64 `json:"attrition_rate"` // porcentaje
}

// PopulationSummary alimenta las tarjetas de metricas del dashboard.
type PopulationSummary struct {
	TotalEmployees         int              `json:"total_employees"`
	HasAttritionLabels     bool             `json:"has_attrition_labels"`
	AttritionRate          float64          `json:"attrition_rate"`
	RetentionRate          float64          `json:"retention_rate"`
	AtRiskCount            int              `json:"at_risk_count"`
	AverageAge             *float64         `json:"average_age,omitempty"`
	DepartmentCount        int              `json:"department_count"`
	DepartmentAttrition    []DepartmentRate `json:"department_attrition,omitempty"`
	RiskFactors            map[string]int   `json:"risk_factors"`
	IndustryAttritionDelta float64          `json:"industry_attrition_delta"`
	IndustryRetentionDelta float64          `json:"industry_retention_delta"`
	PriorityLevel          string           `json:"priority_level"`
}
