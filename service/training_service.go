package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ch4s3/langler/classifier"
	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/repository"
)

// TrainingService implementation.
type trainingService struct {
	modelRepo repository.ModelRepository
	docRepo   repository.TrainingDocumentRepository
	cache     repository.ModelCache
	logger    *slog.Logger
}

// NewTrainingService creates a new training service.
func NewTrainingService(
	modelRepo repository.ModelRepository,
	docRepo repository.TrainingDocumentRepository,
	cache repository.ModelCache,
	logger *slog.Logger,
) TrainingService {
	return &trainingService{
		modelRepo: modelRepo,
		docRepo:   docRepo,
		cache:     cache,
		logger:    logger,
	}
}

// TrainFromDocuments trains a model on the supplied documents and persists
// the serialized result under modelName. Invalid documents are skipped by
// the trainer; the call fails only when nothing remains to train on.
func (s *trainingService) TrainFromDocuments(ctx context.Context, modelName string, docs []domain.TrainingDocument) (*TrainingResult, error) {
	s.logger.InfoContext(ctx, "training topic model", "model", modelName, "documents", len(docs))

	model, err := classifier.Train(docs)
	if err != nil {
		s.logger.WarnContext(ctx, "training failed", "model", modelName, "error", err)
		return nil, fmt.Errorf("train model %s: %w", modelName, err)
	}

	blob, err := model.Encode()
	if err != nil {
		return nil, fmt.Errorf("train model %s: %w", modelName, err)
	}

	stored := &domain.StoredModel{
		Name:      modelName,
		Blob:      blob,
		TrainedAt: time.Now().UTC(),
	}
	if err := s.modelRepo.Save(ctx, stored); err != nil {
		return nil, fmt.Errorf("train model %s: %w", modelName, err)
	}

	// A stale cached blob would shadow the new model until its TTL expires.
	if err := s.cache.Invalidate(ctx, modelName); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate model cache", "model", modelName, "error", err)
	}

	s.logger.InfoContext(ctx, "topic model trained",
		"model", modelName,
		"model_id", stored.ID,
		"topics", len(model.TopicPriors),
		"vocabulary_size", model.VocabularySize)

	return &TrainingResult{
		ModelName:      modelName,
		ModelID:        stored.ID,
		DocumentCount:  len(docs),
		TopicCount:     len(model.TopicPriors),
		VocabularySize: model.VocabularySize,
	}, nil
}

// TrainFromCorpus loads a stored corpus and trains a model from it.
func (s *trainingService) TrainFromCorpus(ctx context.Context, modelName, corpus string) (*TrainingResult, error) {
	docs, err := s.docRepo.FindByCorpus(ctx, corpus)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", corpus, err)
	}

	return s.TrainFromDocuments(ctx, modelName, docs)
}
