package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"attrition-risk/internal/domain"
)

// columnAliases normaliza los nombres de columna de los exports de RRHH mas comunes.
var columnAliases = map[string]string{
	"age":             "Age",
	"department":      "Department",
	"attrition":       "Attrition",
	"leaveornot":      "Attrition",
	"left":            "Attrition",
	"quit":            "Attrition",
	"turnover":        "Attrition",
	"jobsatisfaction": "JobSatisfaction",
	"worklifebalance": "WorkLifeBalance",
	"overtime":        "OverTime",
	"yearsatcompany":  "YearsAtCompany",
	"monthlyincome":   "MonthlyIncome",
}

// NormalizeColumn devuelve el nombre canonico de una columna, o "" si no se usa.
func NormalizeColumn(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", " ", "", "-", "").Replace(key)
	return columnAliases[key]
}

// ParsePopulationCSV lee un dataset de referencia. Las columnas desconocidas se ignoran.
// Si existe la columna de bajas, los valores vacios o no reconocidos cuentan como "no".
func ParsePopulationCSV(r io.Reader) ([]domain.PopulationRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty csv", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", domain.ErrInvalidInput, err)
	}

	columns := make(map[string]int)
	for i, h := range header {
		if canonical := NormalizeColumn(strings.TrimPrefix(h, "\ufeff")); canonical != "" {
			if _, dup := columns[canonical]; !dup {
				columns[canonical] = i
			}
		}
	}

	var records []domain.PopulationRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, line, err)
		}
		rec, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, columns map[string]int) (domain.PopulationRecord, error) {
	var rec domain.PopulationRecord
	cell := func(name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", ok
		}
		return strings.TrimSpace(row[i]), true
	}

	var err error
	if rec.Age, err = intCell(cell, "Age"); err != nil {
		return rec, err
	}
	if rec.JobSatisfaction, err = intCell(cell, "JobSatisfaction"); err != nil {
		return rec, err
	}
	if rec.WorkLifeBalance, err = intCell(cell, "WorkLifeBalance"); err != nil {
		return rec, err
	}
	if rec.YearsAtCompany, err = intCell(cell, "YearsAtCompany"); err != nil {
		return rec, err
	}
	if v, ok := cell("MonthlyIncome"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rec, fmt.Errorf("MonthlyIncome: %q is not a number", v)
		}
		rec.MonthlyIncome = &f
	}
	if v, ok := cell("Department"); ok && v != "" {
		rec.Department = &v
	}
	if v, ok := cell("Attrition"); ok {
		b, _ := parseYesNo(v)
		rec.Attrition = &b
	}
	if v, ok := cell("OverTime"); ok && v != "" {
		b, known := parseYesNo(v)
		if !known {
			return rec, fmt.Errorf("OverTime: %q is not yes/no", v)
		}
		rec.OverTime = &b
	}
	return rec, nil
}

func intCell(cell func(string) (string, bool), name string) (*int, error) {
	v, ok := cell(name)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// algunos exports escriben enteros como "3.0"
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			return nil, fmt.Errorf("%s: %q is not an integer", name, v)
		}
		n = int(f)
	}
	return &n, nil
}

// parseYesNo devuelve el valor y si el texto era reconocible.
func parseYesNo(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "1", "true", "1.0":
		return true, true
	case "no", "n", "0", "false", "0.0":
		return false, true
	default:
		return false, false
	}
}
