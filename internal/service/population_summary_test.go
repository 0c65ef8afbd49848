package service

import (
	"testing"

	"attrition-risk/internal/domain"
)

func TestSummarizePopulationWithLabels(t *testing.T) {
	records := []domain.PopulationRecord{
		{Age: intPtr(30), Department: strPtr("Sales"), Attrition: boolPtr(true), JobSatisfaction: intPtr(1), WorkLifeBalance: intPtr(2), OverTime: boolPtr(true), YearsAtCompany: intPtr(1)},
		{Age: intPtr(40), Department: strPtr("Sales"), Attrition: boolPtr(false), JobSatisfaction: intPtr(4), WorkLifeBalance: intPtr(3), OverTime: boolPtr(false), YearsAtCompany: intPtr(8)},
		{Age: intPtr(50), Department: strPtr("HR"), Attrition: boolPtr(false), JobSatisfaction: intPtr(2), WorkLifeBalance: intPtr(4), OverTime: boolPtr(true), YearsAtCompany: intPtr(6)},
		{Age: intPtr(40), Department: strPtr("Engineering"), Attrition: boolPtr(false), JobSatisfaction: intPtr(3), WorkLifeBalance: intPtr(3), OverTime: boolPtr(false), YearsAtCompany: intPtr(3)},
	}
	s := SummarizePopulation(records)

	if s.TotalEmployees != 4 || !s.HasAttritionLabels || s.AtRiskCount != 1 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.AttritionRate != 25 || s.RetentionRate != 75 {
		t.Fatalf("unexpected rates: %v / %v", s.AttritionRate, s.RetentionRate)
	}
	if s.IndustryAttritionDelta != 12.5 || s.IndustryRetentionDelta != -12.5 {
		t.Fatalf("unexpected industry deltas: %v / %v", s.IndustryAttritionDelta, s.IndustryRetentionDelta)
	}
	if s.PriorityLevel != domain.PriorityHigh {
		t.Fatalf("expected HIGH priority, got %s", s.PriorityLevel)
	}
	if s.AverageAge == nil || *s.AverageAge != 40 {
		t.Fatalf("expected average age 40, got %v", s.AverageAge)
	}
	if s.DepartmentCount != 3 || len(s.DepartmentAttrition) != 3 {
		t.Fatalf("unexpected departments: %+v", s.DepartmentAttrition)
	}
	if first := s.DepartmentAttrition[0]; first.Department != "Engineering" || first.AttritionRate != 0 {
		t.Fatalf("expected departments sorted by name, got %+v", first)
	}
	if sales := s.DepartmentAttrition[2]; sales.Department != "Sales" || sales.Employees != 2 || sales.AttritionRate != 50 {
		t.Fatalf("unexpected Sales rate: %+v", sales)
	}

	wantFactors := map[string]int{
		RiskFactorLowSatisfaction: 2,
		RiskFactorPoorWorkLife:    1,
		RiskFactorHighWorkload:    2,
		RiskFactorLimitedGrowth:   2,
	}
	for name, want := range wantFactors {
		if got, ok := s.RiskFactors[name]; !ok || got != want {
			t.Fatalf("factor %s: expected %d, got %d", name, want, got)
		}
	}
}

func TestSummarizePopulationWithoutLabels(t *testing.T) {
	records := []domain.PopulationRecord{
		{JobSatisfaction: intPtr(1), WorkLifeBalance: intPtr(1)},
		{JobSatisfaction: intPtr(2), WorkLifeBalance: intPtr(4)},
		{JobSatisfaction: intPtr(4), WorkLifeBalance: intPtr(4)},
		{JobSatisfaction: intPtr(4), WorkLifeBalance: intPtr(4)},
	}
	s := SummarizePopulation(records)
	if s.HasAttritionLabels {
		t.Fatalf("expected no labels")
	}
	// 2 con satisfaccion baja + 1 con balance pobre
	if s.AtRiskCount != 3 {
		t.Fatalf("expected 3 at risk, got %d", s.AtRiskCount)
	}
	if s.DepartmentAttrition != nil || s.AverageAge != nil {
		t.Fatalf("expected no department rates or age, got %+v", s)
	}
	if _, ok := s.RiskFactors[RiskFactorHighWorkload]; ok {
		t.Fatalf("overtime factor should be absent without the column")
	}
}

func TestPriorityLevel(t *testing.T) {
	cases := map[float64]string{
		5:    domain.PriorityLow,
		8:    domain.PriorityLow,
		8.1:  domain.PriorityMedium,
		15:   domain.PriorityMedium,
		15.1: domain.PriorityHigh,
	}
	for share, want := range cases {
		if got := priorityLevel(share); got != want {
			t.Fatalf("share %v: expected %s, got %s", share, want, got)
		}
	}
}
