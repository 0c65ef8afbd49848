package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"attrition-risk/internal/dataset"
	"attrition-risk/internal/domain"
	"attrition-risk/internal/service"
)

func main() {
	populationPath := flag.String("population", "", "CSV de referencia para calibrar (opcional)")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)

	var population []domain.PopulationRecord
	if *populationPath != "" {
		records, err := loadPopulation(*populationPath)
		if err != nil {
			log.Fatalf("cargar poblacion: %v", err)
		}
		population = records
		fmt.Printf("Poblacion cargada: %d registros\n", len(population))
	}

	for {
		fmt.Println("\n===== Evaluacion de riesgo =====")
		fmt.Println("[1] Evaluar empleado")
		fmt.Println("[2] Cargar poblacion CSV")
		fmt.Println("[3] Resumen de poblacion")
		fmt.Println("[4] Salir")

		switch readLine(reader, "Selecciona una opcion: ") {
		case "1":
			profile, err := profileForm(reader)
			if err != nil {
				fmt.Printf("Perfil invalido: %v\n", err)
				continue
			}
			a, err := service.AssessEmployee(profile, population)
			if err != nil {
				fmt.Printf("Error evaluando: %v\n", err)
				continue
			}
			printAssessment(a)
		case "2":
			path := readLine(reader, "Ruta del CSV: ")
			records, err := loadPopulation(path)
			if err != nil {
				fmt.Printf("Error cargando: %v\n", err)
				continue
			}
			population = records
			fmt.Printf("Poblacion cargada: %d registros\n", len(population))
		case "3":
			if len(population) == 0 {
				fmt.Println("No hay poblacion cargada.")
				continue
			}
			printSummary(service.SummarizePopulation(population))
		case "4":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func loadPopulation(path string) ([]domain.PopulationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ParsePopulationCSV(f)
}

func printAssessment(a domain.RiskAssessment) {
	fmt.Printf("\nRiesgo: %.1f%% (%s)\n", a.RiskScore, a.RiskLevel)
	fmt.Printf("Intervalo %d%%: %.1f - %.1f\n", a.ConfidenceLevel, a.ConfidenceLower, a.ConfidenceUpper)
	if a.Calibration.AgeAdjusted || a.Calibration.DepartmentBlended {
		fmt.Printf("Score base: %.1f (calibrado con la poblacion)\n", a.BaseScore)
	}
	fmt.Println("Factores:")
	for _, f := range a.Factors {
		if f.Points > 0 {
			fmt.Printf("  %-18s +%.0f\n", f.Factor, f.Points)
		}
	}
	if len(a.Recommendations) == 0 {
		fmt.Println("Sin acciones recomendadas.")
		return
	}
	fmt.Println("Acciones:")
	for _, r := range a.Recommendations {
		fmt.Printf("  [%s] %s: %s (%s)\n", r.Priority, r.Action, r.Description, r.Timeline)
	}
}

func printSummary(s domain.PopulationSummary) {
	fmt.Printf("\nEmpleados: %d\n", s.TotalEmployees)
	fmt.Printf("En riesgo: %d (%.1f%%, %+.1f vs industria)\n", s.AtRiskCount, s.AttritionRate, s.IndustryAttritionDelta)
	fmt.Printf("Retencion: %.1f%%\n", s.RetentionRate)
	fmt.Printf("Prioridad: %s\n", s.PriorityLevel)
	for _, d := range s.DepartmentAttrition {
		fmt.Printf("  %-24s %5d  %.1f%%\n", d.Department, d.Employees, d.AttritionRate)
	}
}
