package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"attrition-risk/internal/domain"
)

type AssessmentRepository interface {
	Create(ctx context.Context, record domain.AssessmentRecord) error
	ListByEmployee(ctx context.Context, employeeRef string, limit int) ([]domain.AssessmentRecord, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Create(ctx context.Context, record domain.AssessmentRecord) error {
	const query = `
		INSERT INTO assessments (id, employee_ref, population_id, risk_score, risk_level, profile, assessment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	profile, err := json.Marshal(record.Profile)
	if err != nil {
		return err
	}
	assessment, err := json.Marshal(record.Assessment)
	if err != nil {
		return err
	}

	var employeeRef, populationID interface{}
	if record.EmployeeRef != "" {
		employeeRef = record.EmployeeRef
	}
	if record.PopulationID != "" {
		populationID = record.PopulationID
	}

	_, err = r.pool.Exec(ctx, query,
		record.ID,
		employeeRef,
		populationID,
		record.Assessment.RiskScore,
		record.Assessment.RiskLevel,
		string(profile),
		string(assessment),
		record.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) ListByEmployee(ctx context.Context, employeeRef string, limit int) ([]domain.AssessmentRecord, error) {
	const query = `
		SELECT id, employee_ref, population_id, profile, assessment, created_at
		FROM assessments
		WHERE employee_ref = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, employeeRef, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AssessmentRecord
	for rows.Next() {
		var (
			rec           domain.AssessmentRecord
			ref, popID    *string
			profileRaw    []byte
			assessmentRaw []byte
		)
		if err = rows.Scan(&rec.ID, &ref, &popID, &profileRaw, &assessmentRaw, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if ref != nil {
			rec.EmployeeRef = *ref
		}
		if popID != nil {
			rec.PopulationID = *popID
		}
		if err = json.Unmarshal(profileRaw, &rec.Profile); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(assessmentRaw, &rec.Assessment); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type MemoryAssessmentRepository struct {
	mu      sync.Mutex
	records []domain.AssessmentRecord
}

func NewMemoryAssessmentRepository() *MemoryAssessmentRepository {
	return &MemoryAssessmentRepository{}
}

func (r *MemoryAssessmentRepository) Create(_ context.Context, record domain.AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *MemoryAssessmentRepository) ListByEmployee(_ context.Context, employeeRef string, limit int) ([]domain.AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AssessmentRecord
	for _, rec := range r.records {
		if rec.EmployeeRef == employeeRef {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
