package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/repository"
	"attrition-risk/internal/telemetry"
)

// PopulationStatsProvider entrega los agregados de calibracion de una poblacion guardada.
type PopulationStatsProvider interface {
	Stats(ctx context.Context, populationID string) (*domain.PopulationStats, error)
}

// PopulationService administra los datasets de referencia subidos.
type PopulationService struct {
	logger      *zap.Logger
	populations repository.PopulationRepository
	cache       PopulationStatsCache
	metrics     telemetry.Metrics
	nowFn       func() time.Time
}

func NewPopulationService(logger *zap.Logger, populations repository.PopulationRepository, cache PopulationStatsCache, metrics telemetry.Metrics) *PopulationService {
	if cache == nil {
		cache = NewMemoryStatsCache(time.Hour)
	}
	return &PopulationService{
		logger:      logger,
		populations: populations,
		cache:       cache,
		metrics:     metrics,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

// Create valida y guarda el dataset, y deja sus agregados en cache.
func (s *PopulationService) Create(ctx context.Context, name string, records []domain.PopulationRecord) (domain.Population, domain.PopulationSummary, error) {
	if len(records) == 0 {
		return domain.Population{}, domain.PopulationSummary{}, fmt.Errorf("%w: population has no records", domain.ErrInvalidInput)
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return domain.Population{}, domain.PopulationSummary{}, fmt.Errorf("record %d: %w", i, err)
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "population"
	}
	population := domain.Population{
		ID:        uuid.NewString(),
		Name:      name,
		Size:      len(records),
		CreatedAt: s.nowFn(),
	}
	if err := s.populations.Create(ctx, population, records); err != nil {
		return domain.Population{}, domain.PopulationSummary{}, err
	}

	if err := s.cache.Set(ctx, population.ID, ComputePopulationStats(records)); err != nil {
		s.logger.Warn("cache population stats failed", zap.String("population_id", population.ID), zap.Error(err))
	}
	s.logger.Info("population stored", zap.String("population_id", population.ID), zap.Int("size", population.Size))
	return population, SummarizePopulation(records), nil
}

// Summary devuelve las metricas agregadas de una poblacion guardada.
func (s *PopulationService) Summary(ctx context.Context, populationID string) (domain.Population, domain.PopulationSummary, error) {
	population, err := s.populations.Get(ctx, populationID)
	if err != nil {
		return domain.Population{}, domain.PopulationSummary{}, err
	}
	records, err := s.populations.Records(ctx, populationID)
	if err != nil {
		return domain.Population{}, domain.PopulationSummary{}, err
	}
	return population, SummarizePopulation(records), nil
}

// Stats resuelve los agregados desde cache; si no estan, los recalcula desde el repositorio.
func (s *PopulationService) Stats(ctx context.Context, populationID string) (*domain.PopulationStats, error) {
	stats, ok, err := s.cache.Get(ctx, populationID)
	if err != nil {
		s.logger.Warn("population stats cache read failed", zap.String("population_id", populationID), zap.Error(err))
	}
	if ok {
		s.record(ctx, s.metrics.StatsCacheHits)
		return stats, nil
	}
	s.record(ctx, s.metrics.StatsCacheMisses)

	records, err := s.populations.Records(ctx, populationID)
	if err != nil {
		return nil, err
	}
	stats = ComputePopulationStats(records)
	if err := s.cache.Set(ctx, populationID, stats); err != nil {
		s.logger.Warn("cache population stats failed", zap.String("population_id", populationID), zap.Error(err))
	}
	return stats, nil
}

func (s *PopulationService) record(ctx context.Context, counter metric.Int64Counter) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("component", "population")))
}
