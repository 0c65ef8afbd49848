package service

import (
	"testing"

	"attrition-risk/internal/domain"
)

func actions(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Action)
	}
	return out
}

// El orden es fijo (satisfaccion, balance, compensacion, carga) aunque una
// recomendacion HIGH quede detras de una MEDIUM.
func TestRecommendFixedOrder(t *testing.T) {
	p := domain.EmployeeProfile{
		Age: 30, YearsAtCompany: 2, Department: "Sales", JobSatisfaction: 2, WorkLifeBalance: 2,
		MonthlyIncome: 3500, FrequentOvertime: true, PerformanceRating: 3,
	}
	got := Recommend(p)
	want := []string{
		"Immediate Manager Intervention",
		"Flexible Work Implementation",
		"Compensation Review",
		"Workload Redistribution",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), actions(got))
	}
	for i := range want {
		if got[i].Action != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i].Action)
		}
	}
	if got[2].Priority != domain.PriorityMedium || got[3].Priority != domain.PriorityHigh {
		t.Fatalf("expected MEDIUM before HIGH, got %s then %s", got[2].Priority, got[3].Priority)
	}
}

func TestRecommendRecords(t *testing.T) {
	critical := Recommend(domain.EmployeeProfile{JobSatisfaction: 1, WorkLifeBalance: 5, MonthlyIncome: 9000})
	if len(critical) != 1 {
		t.Fatalf("expected one recommendation, got %v", actions(critical))
	}
	want := domain.Recommendation{
		Priority:    domain.PriorityCritical,
		Action:      "Immediate Manager Intervention",
		Description: "Schedule urgent 1-on-1 meeting to address satisfaction concerns",
		Timeline:    "Within 24 hours",
		Impact:      domain.ImpactHigh,
	}
	if critical[0] != want {
		t.Fatalf("unexpected record: %+v", critical[0])
	}

	comp := Recommend(domain.EmployeeProfile{JobSatisfaction: 4, WorkLifeBalance: 4, MonthlyIncome: 3999})
	if len(comp) != 1 || comp[0].Priority != domain.PriorityMedium || comp[0].Impact != domain.ImpactMedium || comp[0].Timeline != "Within 2 weeks" {
		t.Fatalf("unexpected compensation record: %+v", comp)
	}

	workload := Recommend(domain.EmployeeProfile{JobSatisfaction: 4, WorkLifeBalance: 4, MonthlyIncome: 4000, FrequentOvertime: true})
	if len(workload) != 1 || workload[0].Action != "Workload Redistribution" || workload[0].Impact != domain.ImpactMedium {
		t.Fatalf("unexpected workload record: %+v", workload)
	}
}

func TestRecommendEmptyForHealthyProfile(t *testing.T) {
	got := Recommend(neutralProfile())
	if got == nil {
		t.Fatalf("expected empty, non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no recommendations, got %v", actions(got))
	}
}

func TestRecommendIgnoresScore(t *testing.T) {
	// dos perfiles con scores muy distintos y las mismas condiciones de disparo
	low := neutralProfile()
	low.FrequentOvertime = true
	high := low
	high.Age = 22
	high.YearsAtCompany = 0
	high.Department = "Sales"
	high.PerformanceRating = 1

	if DefaultRiskEngine.Score(low) == DefaultRiskEngine.Score(high) {
		t.Fatalf("test profiles should score differently")
	}
	a, b := actions(Recommend(low)), actions(Recommend(high))
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("expected identical recommendations, got %v and %v", a, b)
	}
}
