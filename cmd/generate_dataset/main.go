package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"attrition-risk/internal/config"
	"attrition-risk/internal/dataset"
	"attrition-risk/internal/service"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger escribe en w para que stdout quede libre cuando el CSV sale por ahi.
func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("generate_dataset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", cfg.GeneratorSize, "cantidad de empleados")
	seed := fs.Uint64("seed", cfg.GeneratorSeed, "semilla del generador")
	out := fs.String("out", "synthetic_employees.csv", "archivo CSV de salida (- para stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr)
	defer logger.Sync()

	records, err := service.GenerateSyntheticDataset(*n, *seed)
	if err != nil {
		return err
	}

	w := stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := dataset.WriteSyntheticCSV(w, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	summary := service.SummarizeDataset(records)
	logger.Info("dataset generated",
		zap.String("out", *out),
		zap.Int("employees", summary.TotalEmployees),
		zap.Uint64("seed", *seed),
	)

	if *out == "-" {
		return nil
	}
	fmt.Fprintf(stdout, "Empleados:        %d\n", summary.TotalEmployees)
	fmt.Fprintf(stdout, "Tasa de bajas:    %.1f%%\n", summary.AttritionRate)
	fmt.Fprintf(stdout, "Edad promedio:    %.1f\n", summary.AverageAge)
	fmt.Fprintf(stdout, "Ingreso promedio: $%.0f\n", summary.AverageIncome)
	fmt.Fprintf(stdout, "Departamentos:    %d\n", summary.Departments)
	fmt.Fprintf(stdout, "Roles:            %d\n", summary.JobRoles)
	return nil
}
