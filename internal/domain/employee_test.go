package domain

import (
	"errors"
	"testing"
)

func TestProfileInputToProfileDefaults(t *testing.T) {
	dept := "  Finance "
	p, err := ProfileInput{Department: &dept}.ToProfile()
	if err != nil {
		t.Fatalf("to profile: %v", err)
	}
	want := EmployeeProfile{
		Age:               DefaultAge,
		YearsAtCompany:    DefaultYearsAtCompany,
		Department:        "Finance",
		JobSatisfaction:   DefaultJobSatisfaction,
		WorkLifeBalance:   DefaultWorkLifeBalance,
		MonthlyIncome:     DefaultMonthlyIncome,
		PerformanceRating: DefaultPerformanceRating,
	}
	if p != want {
		t.Fatalf("expected %+v, got %+v", want, p)
	}
}

func TestProfileInputToProfileOverrides(t *testing.T) {
	dept := "Sales"
	age, years, sat, wlb, perf := 29, 0, 1, 2, 5
	income := 2750.5
	ot := true
	p, err := ProfileInput{
		Age: &age, YearsAtCompany: &years, Department: &dept, JobSatisfaction: &sat,
		WorkLifeBalance: &wlb, MonthlyIncome: &income, FrequentOvertime: &ot, PerformanceRating: &perf,
	}.ToProfile()
	if err != nil {
		t.Fatalf("to profile: %v", err)
	}
	if p.Age != 29 || p.YearsAtCompany != 0 || p.MonthlyIncome != 2750.5 || !p.FrequentOvertime || p.PerformanceRating != 5 {
		t.Fatalf("overrides not applied: %+v", p)
	}
}

func TestProfileInputToProfileRejects(t *testing.T) {
	sales := "Sales"
	blank := "   "
	tooOld, zero, six := 66, 0, 6
	negative := -100.0
	cases := map[string]ProfileInput{
		"missing department": {},
		"blank department":   {Department: &blank},
		"age 66":             {Department: &sales, Age: &tooOld},
		"satisfaction 0":     {Department: &sales, JobSatisfaction: &zero},
		"balance 6":          {Department: &sales, WorkLifeBalance: &six},
		"performance 0":      {Department: &sales, PerformanceRating: &zero},
		"negative income":    {Department: &sales, MonthlyIncome: &negative},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := in.ToProfile(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPopulationRecordValidate(t *testing.T) {
	age, badAge, sat, badSat, years := 40, 130, 3, 0, -1
	income := -5.0
	cases := []struct {
		name string
		rec  PopulationRecord
		ok   bool
	}{
		{"empty record", PopulationRecord{}, true},
		{"valid values", PopulationRecord{Age: &age, JobSatisfaction: &sat}, true},
		{"age above 120", PopulationRecord{Age: &badAge}, false},
		{"satisfaction 0", PopulationRecord{JobSatisfaction: &badSat}, false},
		{"balance 0", PopulationRecord{WorkLifeBalance: &badSat}, false},
		{"negative tenure", PopulationRecord{YearsAtCompany: &years}, false},
		{"negative income", PopulationRecord{MonthlyIncome: &income}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rec.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDepartmentCountsRate(t *testing.T) {
	if r := (DepartmentCounts{}).Rate(); r != 0 {
		t.Fatalf("expected 0 for empty department, got %v", r)
	}
	if r := (DepartmentCounts{Employees: 4, Leavers: 1}).Rate(); r != 0.25 {
		t.Fatalf("expected 0.25, got %v", r)
	}
}

func TestSyntheticEmployeeProjections(t *testing.T) {
	e := SyntheticEmployee{
		Age: 33, YearsAtCompany: 4, Department: "IT", JobSatisfaction: 2, WorkLifeBalance: 3,
		MonthlyIncome: 4200, OverTime: true, PerformanceRating: 3, Attrition: true,
	}
	p := e.Profile()
	if p.Age != 33 || p.MonthlyIncome != 4200 || !p.FrequentOvertime || p.Department != "IT" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	r := e.PopulationRecord()
	if r.Age == nil || *r.Age != 33 || r.Attrition == nil || !*r.Attrition || r.Department == nil || *r.Department != "IT" {
		t.Fatalf("unexpected population record: %+v", r)
	}
}
