package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attrition-risk/internal/dataset"
)

func TestRun_StdoutCarriesOnlyCSV(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-n", "3", "-seed", "7", "-out", "-"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	if strings.Contains(stdout.String(), "dataset generated") {
		t.Fatalf("log line leaked into csv output:\n%s", stdout.String())
	}
	records, err := dataset.ParsePopulationCSV(&stdout)
	if err != nil {
		t.Fatalf("stdout is not a readable csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if !strings.Contains(stderr.String(), `"msg":"dataset generated"`) {
		t.Fatalf("expected log line on stderr, got %q", stderr.String())
	}
}

func TestRun_WritesFileAndSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "employees.csv")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-n", "5", "-out", out}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	records, err := dataset.ParsePopulationCSV(f)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if !strings.Contains(stdout.String(), "Empleados:        5") {
		t.Fatalf("missing summary in stdout: %q", stdout.String())
	}
}

func TestRun_RejectsEmptyDataset(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-n", "0", "-out", "-"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected error for n=0")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
}
