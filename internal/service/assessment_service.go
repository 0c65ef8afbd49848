package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/repository"
	"attrition-risk/internal/telemetry"
)

const (
	defaultBatchConcurrency = 8
	defaultHistoryLimit     = 20
	maxHistoryLimit         = 200
)

// AssessInput es una evaluacion pedida por la API. PopulationID y Population son
// alternativos: si vienen los dos, gana la poblacion en linea.
type AssessInput struct {
	Profile      domain.EmployeeProfile
	EmployeeRef  string
	PopulationID string
	Population   []domain.PopulationRecord
}

// AssessmentService orquesta el motor puro con persistencia, cache y metricas.
type AssessmentService struct {
	logger      *zap.Logger
	stats       PopulationStatsProvider
	assessments repository.AssessmentRepository
	metrics     telemetry.Metrics
	concurrency int
	nowFn       func() time.Time
}

func NewAssessmentService(
	logger *zap.Logger,
	stats PopulationStatsProvider,
	assessments repository.AssessmentRepository,
	metrics telemetry.Metrics,
	concurrency int,
) *AssessmentService {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &AssessmentService{
		logger:      logger,
		stats:       stats,
		assessments: assessments,
		metrics:     metrics,
		concurrency: concurrency,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

// Assess evalua un perfil y registra el resultado en el historial.
func (s *AssessmentService) Assess(ctx context.Context, in AssessInput) (domain.AssessmentRecord, error) {
	stats, err := s.resolveStats(ctx, in.PopulationID, in.Population)
	if err != nil {
		return domain.AssessmentRecord{}, err
	}
	assessment, err := AssessWithStats(in.Profile, stats)
	if err != nil {
		return domain.AssessmentRecord{}, err
	}
	s.observe(ctx, assessment)

	record := domain.AssessmentRecord{
		ID:           uuid.NewString(),
		EmployeeRef:  strings.TrimSpace(in.EmployeeRef),
		PopulationID: in.PopulationID,
		Profile:      in.Profile,
		Assessment:   assessment,
		CreatedAt:    s.nowFn(),
	}
	if len(in.Population) > 0 {
		record.PopulationID = ""
	}
	if s.assessments != nil {
		if err := s.assessments.Create(ctx, record); err != nil {
			return domain.AssessmentRecord{}, fmt.Errorf("store assessment: %w", err)
		}
	}
	return record, nil
}

// AssessBatch evalua varios perfiles contra la misma poblacion. Los perfiles son
// independientes, asi que se reparten entre goroutines; el resultado respeta el orden
// de entrada. Un perfil invalido cancela el lote.
func (s *AssessmentService) AssessBatch(ctx context.Context, populationID string, profiles []domain.EmployeeProfile) ([]domain.RiskAssessment, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: batch has no profiles", domain.ErrInvalidInput)
	}
	stats, err := s.resolveStats(ctx, populationID, nil)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RiskAssessment, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, p := range profiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := AssessWithStats(p, stats)
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, a := range out {
		s.observe(ctx, a)
	}
	return out, nil
}

// History lista las ultimas evaluaciones de un empleado.
func (s *AssessmentService) History(ctx context.Context, employeeRef string, limit int) ([]domain.AssessmentRecord, error) {
	employeeRef = strings.TrimSpace(employeeRef)
	if employeeRef == "" {
		return nil, fmt.Errorf("%w: employee_ref is required", domain.ErrInvalidInput)
	}
	if s.assessments == nil {
		return nil, errors.New("assessment history not configured")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.assessments.ListByEmployee(ctx, employeeRef, limit)
}

func (s *AssessmentService) resolveStats(ctx context.Context, populationID string, inline []domain.PopulationRecord) (*domain.PopulationStats, error) {
	if len(inline) > 0 {
		for i, r := range inline {
			if err := r.Validate(); err != nil {
				return nil, fmt.Errorf("population record %d: %w", i, err)
			}
		}
		return ComputePopulationStats(inline), nil
	}
	populationID = strings.TrimSpace(populationID)
	if populationID == "" || s.stats == nil {
		return nil, nil
	}
	return s.stats.Stats(ctx, populationID)
}

func (s *AssessmentService) observe(ctx context.Context, a domain.RiskAssessment) {
	attrs := metric.WithAttributes(attribute.String("risk_level", a.RiskLevel))
	if s.metrics.Assessments != nil {
		s.metrics.Assessments.Add(ctx, 1, attrs)
	}
	if s.metrics.RiskScores != nil {
		s.metrics.RiskScores.Record(ctx, a.RiskScore, attrs)
	}
}
