package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"attrition-risk/internal/domain"
)

type PopulationRepository interface {
	Create(ctx context.Context, population domain.Population, records []domain.PopulationRecord) error
	Get(ctx context.Context, id string) (domain.Population, error)
	Records(ctx context.Context, id string) ([]domain.PopulationRecord, error)
}

type PgPopulationRepository struct {
	pool *pgxpool.Pool
}

func NewPgPopulationRepository(pool *pgxpool.Pool) *PgPopulationRepository {
	return &PgPopulationRepository{pool: pool}
}

// Create inserta la cabecera y copia las filas en bloque dentro de una transaccion.
func (r *PgPopulationRepository) Create(ctx context.Context, population domain.Population, records []domain.PopulationRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO populations (id, name, size, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, query,
		population.ID,
		population.Name,
		population.Size,
		population.CreatedAt,
	); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"population_records"},
		[]string{"population_id", "position", "age", "department", "attrition", "job_satisfaction", "work_life_balance", "overtime", "years_at_company", "monthly_income"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				population.ID,
				i,
				rec.Age,
				rec.Department,
				rec.Attrition,
				rec.JobSatisfaction,
				rec.WorkLifeBalance,
				rec.OverTime,
				rec.YearsAtCompany,
				rec.MonthlyIncome,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy population records: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *PgPopulationRepository) Get(ctx context.Context, id string) (domain.Population, error) {
	const query = `
		SELECT id, name, size, created_at
		FROM populations
		WHERE id = $1
	`
	if _, err := uuid.Parse(id); err != nil {
		return domain.Population{}, domain.ErrPopulationNotFound
	}
	var p domain.Population
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Size, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Population{}, domain.ErrPopulationNotFound
	}
	return p, err
}

func (r *PgPopulationRepository) Records(ctx context.Context, id string) ([]domain.PopulationRecord, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	const query = `
		SELECT age, department, attrition, job_satisfaction, work_life_balance, overtime, years_at_company, monthly_income
		FROM population_records
		WHERE population_id = $1
		ORDER BY position ASC
	`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PopulationRecord
	for rows.Next() {
		var rec domain.PopulationRecord
		err = rows.Scan(
			&rec.Age,
			&rec.Department,
			&rec.Attrition,
			&rec.JobSatisfaction,
			&rec.WorkLifeBalance,
			&rec.OverTime,
			&rec.YearsAtCompany,
			&rec.MonthlyIncome,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// MemoryPopulationRepository se usa cuando no hay DATABASE_URL y en tests.
type MemoryPopulationRepository struct {
	mu          sync.RWMutex
	populations map[string]domain.Population
	records     map[string][]domain.PopulationRecord
}

func NewMemoryPopulationRepository() *MemoryPopulationRepository {
	return &MemoryPopulationRepository{
		populations: make(map[string]domain.Population),
		records:     make(map[string][]domain.PopulationRecord),
	}
}

func (r *MemoryPopulationRepository) Create(_ context.Context, population domain.Population, records []domain.PopulationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.populations[population.ID]; ok {
		return fmt.Errorf("population %s already exists", population.ID)
	}
	r.populations[population.ID] = population
	r.records[population.ID] = append([]domain.PopulationRecord(nil), records...)
	return nil
}

func (r *MemoryPopulationRepository) Get(_ context.Context, id string) (domain.Population, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.populations[id]
	if !ok {
		return domain.Population{}, domain.ErrPopulationNotFound
	}
	return p, nil
}

func (r *MemoryPopulationRepository) Records(_ context.Context, id string) ([]domain.PopulationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs, ok := r.records[id]
	if !ok {
		return nil, domain.ErrPopulationNotFound
	}
	return append([]domain.PopulationRecord(nil), recs...), nil
}
