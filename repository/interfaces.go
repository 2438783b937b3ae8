package repository

import (
	"context"
	"time"

	"github.com/Ch4s3/langler/domain"
)

// ModelRepository handles trained model persistence.
type ModelRepository interface {
	Save(ctx context.Context, model *domain.StoredModel) error
	FindLatest(ctx context.Context, name string) (*domain.StoredModel, error)
	ListNames(ctx context.Context) ([]string, error)
}

// TrainingDocumentRepository handles labeled training corpus persistence.
type TrainingDocumentRepository interface {
	FindByCorpus(ctx context.Context, corpus string) ([]domain.TrainingDocument, error)
	SaveBatch(ctx context.Context, corpus string, docs []domain.TrainingDocument) error
}

// ModelCache caches serialized model blobs in front of the repository.
type ModelCache interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, blob []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, name string) error
}
