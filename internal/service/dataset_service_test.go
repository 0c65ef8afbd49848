package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/telemetry"
)

func TestDatasetServiceGenerate(t *testing.T) {
	svc := NewDatasetService(zap.NewNop(), telemetry.Metrics{}, 42, 30, 100)
	ctx := context.Background()

	records, summary, err := svc.Generate(ctx, GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(records) != 30 || summary.TotalEmployees != 30 {
		t.Fatalf("expected default size 30, got %d", len(records))
	}

	again, _, _ := svc.Generate(ctx, GenerateInput{})
	if again[0] != records[0] {
		t.Fatalf("default seed should be reproducible")
	}

	size := 10
	seed := uint64(99)
	custom, _, err := svc.Generate(ctx, GenerateInput{Size: &size, Seed: &seed})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(custom) != 10 {
		t.Fatalf("expected 10 records, got %d", len(custom))
	}
}

func TestDatasetServiceLimits(t *testing.T) {
	svc := NewDatasetService(zap.NewNop(), telemetry.Metrics{}, 42, 30, 100)
	for _, size := range []int{0, 101} {
		n := size
		if _, _, err := svc.Generate(context.Background(), GenerateInput{Size: &n}); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("size %d: expected ErrInvalidArgument, got %v", size, err)
		}
	}
}
