package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"attrition-risk/internal/domain"
)

// readLine muestra el prompt y devuelve la linea sin espacios.
func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseOptionalInt: vacio significa "usar el valor por defecto".
func parseOptionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%q no es un entero", raw)
	}
	return &n, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
	if err != nil {
		return nil, fmt.Errorf("%q no es un numero", raw)
	}
	return &f, nil
}

func parseOptionalYesNo(raw string) (*bool, error) {
	switch strings.ToLower(raw) {
	case "":
		return nil, nil
	case "s", "si", "y", "yes":
		b := true
		return &b, nil
	case "n", "no":
		b := false
		return &b, nil
	default:
		return nil, fmt.Errorf("%q no es si/no", raw)
	}
}

// profileForm pregunta cada campo; Enter deja el valor neutro.
func profileForm(reader *bufio.Reader) (domain.EmployeeProfile, error) {
	var (
		in  domain.ProfileInput
		err error
	)

	dept := readLine(reader, "Departamento: ")
	in.Department = &dept

	if in.Age, err = parseOptionalInt(readLine(reader, fmt.Sprintf("Edad [%d]: ", domain.DefaultAge))); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.YearsAtCompany, err = parseOptionalInt(readLine(reader, fmt.Sprintf("Anos en la empresa [%d]: ", domain.DefaultYearsAtCompany))); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.JobSatisfaction, err = parseOptionalInt(readLine(reader, fmt.Sprintf("Satisfaccion 1-5 [%d]: ", domain.DefaultJobSatisfaction))); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.WorkLifeBalance, err = parseOptionalInt(readLine(reader, fmt.Sprintf("Balance vida-trabajo 1-5 [%d]: ", domain.DefaultWorkLifeBalance))); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.MonthlyIncome, err = parseOptionalFloat(readLine(reader, fmt.Sprintf("Ingreso mensual [%.0f]: ", domain.DefaultMonthlyIncome))); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.FrequentOvertime, err = parseOptionalYesNo(readLine(reader, "Horas extra frecuentes s/n [n]: ")); err != nil {
		return domain.EmployeeProfile{}, err
	}
	if in.PerformanceRating, err = parseOptionalInt(readLine(reader, fmt.Sprintf("Desempeno 1-5 [%d]: ", domain.DefaultPerformanceRating))); err != nil {
		return domain.EmployeeProfile{}, err
	}

	return in.ToProfile()
}
