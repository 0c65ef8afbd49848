package main

import (
	"sort"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/service"
)

// groupStats acumula scores de un grupo (bajas o permanencias).
type groupStats struct {
	Count    int
	SumScore float64
	Flagged  int
}

func (g groupStats) Mean() float64 {
	if g.Count == 0 {
		return 0
	}
	return g.SumScore / float64(g.Count)
}

func (g groupStats) FlaggedShare() float64 {
	if g.Count == 0 {
		return 0
	}
	return float64(g.Flagged) / float64(g.Count) * 100
}

type departmentAgreement struct {
	Department string
	Leavers    groupStats
	Stayers    groupStats
}

// agreementReport compara el motor de reglas con las etiquetas del generador.
type agreementReport struct {
	Leavers     groupStats
	Stayers     groupStats
	Departments []departmentAgreement
}

// Agrees indica si los que se van reciben, en promedio, un score mayor.
func (r agreementReport) Agrees() bool {
	return r.Leavers.Count > 0 && r.Stayers.Count > 0 && r.Leavers.Mean() > r.Stayers.Mean()
}

// evaluateAgreement puntua cada empleado contra los agregados de la poblacion.
// Un score en nivel MODERATE o superior cuenta como "marcado".
func evaluateAgreement(records []domain.SyntheticEmployee, stats *domain.PopulationStats) (agreementReport, error) {
	var report agreementReport
	byDept := make(map[string]*departmentAgreement)

	for _, e := range records {
		a, err := service.AssessWithStats(e.Profile(), stats)
		if err != nil {
			return agreementReport{}, err
		}
		flagged := a.RiskLevel != domain.RiskLevelLow

		d, ok := byDept[e.Department]
		if !ok {
			d = &departmentAgreement{Department: e.Department}
			byDept[e.Department] = d
		}
		if e.Attrition {
			add(&report.Leavers, a.RiskScore, flagged)
			add(&d.Leavers, a.RiskScore, flagged)
		} else {
			add(&report.Stayers, a.RiskScore, flagged)
			add(&d.Stayers, a.RiskScore, flagged)
		}
	}

	for _, d := range byDept {
		report.Departments = append(report.Departments, *d)
	}
	sort.Slice(report.Departments, func(i, j int) bool {
		return report.Departments[i].Department < report.Departments[j].Department
	})
	return report, nil
}

func add(g *groupStats, score float64, flagged bool) {
	g.Count++
	g.SumScore += score
	if flagged {
		g.Flagged++
	}
}

func populationRecords(records []domain.SyntheticEmployee) []domain.PopulationRecord {
	out := make([]domain.PopulationRecord, len(records))
	for i, e := range records {
		out[i] = e.PopulationRecord()
	}
	return out
}
