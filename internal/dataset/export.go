package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"attrition-risk/internal/domain"
)

// SyntheticHeader es el orden de columnas del dataset exportado.
var SyntheticHeader = []string{
	"EmployeeID", "Age", "Attrition", "BusinessTravel", "DailyRate", "Department",
	"DistanceFromHome", "Education", "EducationField", "EnvironmentSatisfaction", "Gender",
	"HourlyRate", "JobInvolvement", "JobLevel", "JobRole", "JobSatisfaction", "MaritalStatus",
	"MonthlyIncome", "NumCompaniesWorked", "OverTime", "PercentSalaryHike", "PerformanceRating",
	"RelationshipSatisfaction", "StockOptionLevel", "TotalWorkingYears", "TrainingTimesLastYear",
	"WorkLifeBalance", "YearsAtCompany", "YearsInCurrentRole", "YearsSinceLastPromotion",
	"YearsWithCurrManager",
}

// WriteSyntheticCSV escribe el dataset con Attrition como 1/0 y OverTime como Yes/No,
// el mismo formato que acepta ParsePopulationCSV.
func WriteSyntheticCSV(w io.Writer, records []domain.SyntheticEmployee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SyntheticHeader); err != nil {
		return err
	}
	for _, e := range records {
		row := []string{
			e.EmployeeID,
			strconv.Itoa(e.Age),
			boolDigit(e.Attrition),
			e.BusinessTravel,
			strconv.Itoa(e.DailyRate),
			e.Department,
			strconv.Itoa(e.DistanceFromHome),
			strconv.Itoa(e.Education),
			e.EducationField,
			strconv.Itoa(e.EnvironmentSatisfaction),
			e.Gender,
			strconv.Itoa(e.HourlyRate),
			strconv.Itoa(e.JobInvolvement),
			strconv.Itoa(e.JobLevel),
			e.JobRole,
			strconv.Itoa(e.JobSatisfaction),
			e.MaritalStatus,
			strconv.Itoa(e.MonthlyIncome),
			strconv.Itoa(e.NumCompaniesWorked),
			yesNo(e.OverTime),
			strconv.Itoa(e.PercentSalaryHike),
			strconv.Itoa(e.PerformanceRating),
			strconv.Itoa(e.RelationshipSatisfaction),
			strconv.Itoa(e.StockOptionLevel),
			strconv.Itoa(e.TotalWorkingYears),
			strconv.Itoa(e.TrainingTimesLastYear),
			strconv.Itoa(e.WorkLifeBalance),
			strconv.Itoa(e.YearsAtCompany),
			strconv.Itoa(e.YearsInCurrentRole),
			strconv.Itoa(e.YearsSinceLastPromotion),
			strconv.Itoa(e.YearsWithCurrManager),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
