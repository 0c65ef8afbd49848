package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"attrition-risk/internal/config"
	"attrition-risk/internal/domain"
	"attrition-risk/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	n := flag.Int("n", cfg.GeneratorSize, "cantidad de empleados")
	seed := flag.Uint64("seed", cfg.GeneratorSeed, "semilla del generador")
	calibrated := flag.Bool("calibrated", true, "calibrar contra el mismo dataset")
	flag.Parse()

	records, err := service.GenerateSyntheticDataset(*n, *seed)
	if err != nil {
		log.Fatal(err)
	}

	var stats *domain.PopulationStats
	if *calibrated {
		stats = service.ComputePopulationStats(populationRecords(records))
	}

	report, err := evaluateAgreement(records, stats)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fmt.Printf("%s[Dataset]%s n=%d seed=%d calibrado=%t\n\n", colorCyan, colorReset, *n, *seed, *calibrated)
	fmt.Printf("%-12s %8s %8s %10s %10s\n", "Departamento", "Bajas", "Quedan", "Score baja", "Score queda")
	for _, d := range report.Departments {
		fmt.Printf("%-12s %8d %8d %10.1f %10.1f\n",
			d.Department, d.Leavers.Count, d.Stayers.Count, d.Leavers.Mean(), d.Stayers.Mean())
	}

	fmt.Println("\n==== Promedios ====")
	fmt.Printf("Bajas:  score %.2f | marcados %.1f%%\n", report.Leavers.Mean(), report.Leavers.FlaggedShare())
	fmt.Printf("Quedan: score %.2f | marcados %.1f%%\n", report.Stayers.Mean(), report.Stayers.FlaggedShare())

	if !report.Agrees() {
		fmt.Printf("%sSin acuerdo direccional entre motor y etiquetas%s\n", colorRed, colorReset)
		os.Exit(1)
	}
	fmt.Printf("%sAcuerdo direccional OK%s\n", colorGreen, colorReset)
}
