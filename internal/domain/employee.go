package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmployeeProfile son los atributos de un empleado que usa el motor de riesgo.
type EmployeeProfile struct {
	Age               int     `json:"age" validate:"min=18,max=65"`
	YearsAtCompany    int     `json:"years_at_company" validate:"min=0"`
	Department        string  `json:"department" validate:"required"`
	JobSatisfaction   int     `json:"job_satisfaction" validate:"min=1,max=5"`
	WorkLifeBalance   int     `json:"work_life_balance" validate:"min=1,max=5"`
	MonthlyIncome     float64 `json:"monthly_income" validate:"gt=0"`
	FrequentOvertime  bool    `json:"frequent_overtime"`
	PerformanceRating int     `json:"performance_rating" validate:"min=1,max=5"`
}

// Valores neutros del formulario de prediccion.
const (
	DefaultAge               = 35
	DefaultYearsAtCompany    = 3
	DefaultJobSatisfaction   = 3
	DefaultWorkLifeBalance   = 3
	DefaultMonthlyIncome     = 5000.0
	DefaultPerformanceRating = 3
)

var profileValidator = validator.New()

// Validate verifica rangos y campos obligatorios del perfil.
func (p EmployeeProfile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ProfileInput es la forma "cruda" que llega desde la API: los campos ausentes son nil.
type ProfileInput struct {
	Age               *int     `json:"age"`
	YearsAtCompany    *int     `json:"years_at_company"`
	Department        *string  `json:"department"`
	JobSatisfaction   *int     `json:"job_satisfaction"`
	WorkLifeBalance   *int     `json:"work_life_balance"`
	MonthlyIncome     *float64 `json:"monthly_income"`
	FrequentOvertime  *bool    `json:"frequent_overtime"`
	PerformanceRating *int     `json:"performance_rating"`
}

// ToProfile completa los campos ausentes con valores neutros y valida el resultado.
// El departamento no tiene un valor neutro, por eso es obligatorio.
func (in ProfileInput) ToProfile() (EmployeeProfile, error) {
	p := EmployeeProfile{
		Age:               DefaultAge,
		YearsAtCompany:    DefaultYearsAtCompany,
		JobSatisfaction:   DefaultJobSatisfaction,
		WorkLifeBalance:   DefaultWorkLifeBalance,
		MonthlyIncome:     DefaultMonthlyIncome,
		PerformanceRating: DefaultPerformanceRating,
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.YearsAtCompany != nil {
		p.YearsAtCompany = *in.YearsAtCompany
	}
	if in.Department != nil {
		p.Department = strings.TrimSpace(*in.Department)
	}
	if in.JobSatisfaction != nil {
		p.JobSatisfaction = *in.JobSatisfaction
	}
	if in.WorkLifeBalance != nil {
		p.WorkLifeBalance = *in.WorkLifeBalance
	}
	if in.MonthlyIncome != nil {
		p.MonthlyIncome = *in.MonthlyIncome
	}
	if in.FrequentOvertime != nil {
		p.FrequentOvertime = *in.FrequentOvertime
	}
	if in.PerformanceRating != nil {
		p.PerformanceRating = *in.PerformanceRating
	}
	if err := p.Validate(); err != nil {
		return EmployeeProfile{}, err
	}
	return p, nil
}
