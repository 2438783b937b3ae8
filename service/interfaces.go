package service

import (
	"context"

	"github.com/Ch4s3/langler/domain"
)

// TrainingService handles topic model training business logic.
type TrainingService interface {
	TrainFromDocuments(ctx context.Context, modelName string, docs []domain.TrainingDocument) (*TrainingResult, error)
	TrainFromCorpus(ctx context.Context, modelName, corpus string) (*TrainingResult, error)
}

// ClassificationService handles document classification business logic.
type ClassificationService interface {
	ClassifyText(ctx context.Context, modelName, text string) ([]domain.TopicScore, error)
	ListModels(ctx context.Context) ([]string, error)
}

// TrainingResult summarizes one completed training run.
type TrainingResult struct {
	ModelName      string `json:"model_name"`
	ModelID        string `json:"model_id"`
	DocumentCount  int    `json:"document_count"`
	TopicCount     int    `json:"topic_count"`
	VocabularySize int    `json:"vocabulary_size"`
}
