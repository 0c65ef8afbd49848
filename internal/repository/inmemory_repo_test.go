package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"attrition-risk/internal/domain"
)

func TestMemoryPopulationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPopulationRepository()
	age := 30
	population := domain.Population{ID: "p-1", Name: "q1", Size: 1, CreatedAt: time.Now().UTC()}

	if err := repo.Create(ctx, population, []domain.PopulationRecord{{Age: &age}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, population, nil); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}

	got, err := repo.Get(ctx, "p-1")
	if err != nil || got.Name != "q1" {
		t.Fatalf("get: %+v %v", got, err)
	}
	records, err := repo.Records(ctx, "p-1")
	if err != nil || len(records) != 1 || *records[0].Age != 30 {
		t.Fatalf("records: %+v %v", records, err)
	}

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, domain.ErrPopulationNotFound) {
		t.Fatalf("expected ErrPopulationNotFound, got %v", err)
	}
	if _, err := repo.Records(ctx, "nope"); !errors.Is(err, domain.ErrPopulationNotFound) {
		t.Fatalf("expected ErrPopulationNotFound, got %v", err)
	}
}

func TestMemoryAssessmentRepositoryListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAssessmentRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		rec := domain.AssessmentRecord{ID: id, EmployeeRef: "EMP0001", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	_ = repo.Create(ctx, domain.AssessmentRecord{ID: "other", EmployeeRef: "EMP0002", CreatedAt: base})

	got, err := repo.ListByEmployee(ctx, "EMP0001", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}

	none, err := repo.ListByEmployee(ctx, "EMP0404", 10)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty list, got %+v %v", none, err)
	}
}
