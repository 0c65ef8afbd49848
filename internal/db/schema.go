package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS populations (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	size        INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS population_records (
	population_id     UUID NOT NULL REFERENCES populations(id) ON DELETE CASCADE,
	position          INTEGER NOT NULL,
	age               INTEGER,
	department        TEXT,
	attrition         BOOLEAN,
	job_satisfaction  INTEGER,
	work_life_balance INTEGER,
	overtime          BOOLEAN,
	years_at_company  INTEGER,
	monthly_income    DOUBLE PRECISION,
	PRIMARY KEY (population_id, position)
);

CREATE TABLE IF NOT EXISTS assessments (
	id            UUID PRIMARY KEY,
	employee_ref  TEXT,
	population_id UUID REFERENCES populations(id) ON DELETE SET NULL,
	risk_score    DOUBLE PRECISION NOT NULL,
	risk_level    TEXT NOT NULL,
	profile       JSONB NOT NULL,
	assessment    JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS assessments_employee_ref_idx ON assessments (employee_ref, created_at DESC);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
