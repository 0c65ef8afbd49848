package domain

import "time"

const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

const (
	RiskLevelCritical = "CRITICAL"
	RiskLevelModerate = "MODERATE"
	RiskLevelLow      = "LOW"
)

// ConfidenceLevel es una etiqueta fija, no un intervalo estadistico real.
const ConfidenceLevel = 95

type Recommendation struct {
	Priority    string `json:"priority"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Impact      string `json:"impact"`
}

// FactorContribution indica cuantos puntos aporto cada factor al score base.
type FactorContribution struct {
	Factor string  `json:"factor"`
	Points float64 `json:"points"`
}

// Calibration describe que ajustes poblacionales se aplicaron.
type Calibration struct {
	AgeAdjusted        bool     `json:"age_adjusted"`
	PopulationMeanAge  *float64 `json:"population_mean_age,omitempty"`
	DepartmentBlended  bool     `json:"department_blended"`
	DepartmentAttrRate *float64 `json:"department_attrition_rate,omitempty"` // en puntos porcentuales
}

type RiskAssessment struct {
	RiskScore       float64              `json:"risk_score"`
	BaseScore       float64              `json:"base_score"`
	ConfidenceLower float64              `json:"confidence_lower"`
	ConfidenceUpper float64              `json:"confidence_upper"`
	ConfidenceLevel int                  `json:"confidence_level"`
	RiskLevel       string               `json:"risk_level"`
	Factors         []FactorContribution `json:"factors"`
	Calibration     Calibration          `json:"calibration"`
	Recommendations []Recommendation     `json:"recommendations"`
}

// AssessmentRecord es una evaluacion registrada por la API (historial).
type AssessmentRecord struct {
	ID           string          `json:"id"`
	EmployeeRef  string          `json:"employee_ref,omitempty"`
	PopulationID string          `json:"population_id,omitempty"`
	Profile      EmployeeProfile `json:"profile"`
	Assessment   RiskAssessment  `json:"assessment"`
	CreatedAt    time.Time       `json:"created_at"`
}
