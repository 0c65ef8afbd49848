package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/telemetry"
)

// DatasetService expone el generador sintetico con limites de tamano.
type DatasetService struct {
	logger      *zap.Logger
	metrics     telemetry.Metrics
	defaultSeed uint64
	defaultSize int
	maxSize     int
}

func NewDatasetService(logger *zap.Logger, metrics telemetry.Metrics, defaultSeed uint64, defaultSize, maxSize int) *DatasetService {
	if defaultSize <= 0 {
		defaultSize = 5000
	}
	if maxSize <= 0 {
		maxSize = 50000
	}
	return &DatasetService{
		logger:      logger,
		metrics:     metrics,
		defaultSeed: defaultSeed,
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

// GenerateInput: Size nil usa el tamano por defecto, Seed nil la semilla configurada.
type GenerateInput struct {
	Size *int
	Seed *uint64
}

func (s *DatasetService) Generate(ctx context.Context, in GenerateInput) ([]domain.SyntheticEmployee, domain.DatasetSummary, error) {
	n := s.defaultSize
	if in.Size != nil {
		n = *in.Size
	}
	if n > s.maxSize {
		return nil, domain.DatasetSummary{}, fmt.Errorf("%w: dataset size %d exceeds maximum %d", domain.ErrInvalidArgument, n, s.maxSize)
	}
	seed := s.defaultSeed
	if in.Seed != nil {
		seed = *in.Seed
	}

	records, err := GenerateSyntheticDataset(n, seed)
	if err != nil {
		return nil, domain.DatasetSummary{}, err
	}
	if s.metrics.SyntheticRecords != nil {
		s.metrics.SyntheticRecords.Add(ctx, int64(len(records)))
	}
	summary := SummarizeDataset(records)
	s.logger.Info("synthetic dataset generated",
		zap.Int("size", n),
		zap.Uint64("seed", seed),
		zap.Float64("attrition_rate", summary.AttritionRate),
	)
	return records, summary, nil
}
