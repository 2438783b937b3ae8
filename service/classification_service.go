package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ch4s3/langler/classifier"
	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/repository"
)

// ClassificationService implementation.
type classificationService struct {
	modelRepo repository.ModelRepository
	cache     repository.ModelCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewClassificationService creates a new classification service.
func NewClassificationService(
	modelRepo repository.ModelRepository,
	cache repository.ModelCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) ClassificationService {
	return &classificationService{
		modelRepo: modelRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// ClassifyText scores text against the named model and returns the ranked
// topic distribution. The serialized model is resolved from the cache first,
// then from the repository; a blob that fails to decode surfaces
// domain.ErrModelDecode to the caller with no fallback.
func (s *classificationService) ClassifyText(ctx context.Context, modelName, text string) ([]domain.TopicScore, error) {
	if text == "" {
		return nil, domain.ErrEmptyDocument
	}

	blob, err := s.resolveModelBlob(ctx, modelName)
	if err != nil {
		return nil, err
	}

	model, err := domain.DecodeTopicModel(blob)
	if err != nil {
		s.logger.ErrorContext(ctx, "stored model blob is not decodable", "model", modelName, "error", err)
		return nil, fmt.Errorf("classify with model %s: %w", modelName, err)
	}

	scores := classifier.Classify(text, model)

	s.logger.InfoContext(ctx, "document classified", "model", modelName, "topics", len(scores))

	return scores, nil
}

// ListModels returns the names of all stored models.
func (s *classificationService) ListModels(ctx context.Context) ([]string, error) {
	names, err := s.modelRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return names, nil
}

func (s *classificationService) resolveModelBlob(ctx context.Context, modelName string) ([]byte, error) {
	blob, err := s.cache.Get(ctx, modelName)
	if err == nil {
		return blob, nil
	}
	if !errors.Is(err, domain.ErrModelNotFound) {
		// Cache trouble is not fatal; the repository remains authoritative.
		s.logger.WarnContext(ctx, "model cache unavailable", "model", modelName, "error", err)
	}

	stored, err := s.modelRepo.FindLatest(ctx, modelName)
	if err != nil {
		return nil, fmt.Errorf("resolve model %s: %w", modelName, err)
	}

	if err := s.cache.Set(ctx, modelName, stored.Blob, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache model", "model", modelName, "error", err)
	}

	return stored.Blob, nil
}
