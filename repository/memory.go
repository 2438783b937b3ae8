// ABOUTME: In-memory repository implementations for tests and local runs
// ABOUTME: Mirrors the Postgres/Redis-backed implementations without I/O
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ch4s3/langler/domain"
)

// MemoryModelRepository is a ModelRepository backed by a map.
type MemoryModelRepository struct {
	mu     sync.RWMutex
	models map[string][]*domain.StoredModel
}

// NewMemoryModelRepository creates an empty in-memory model repository.
func NewMemoryModelRepository() *MemoryModelRepository {
	return &MemoryModelRepository{models: make(map[string][]*domain.StoredModel)}
}

func (r *MemoryModelRepository) Save(_ context.Context, model *domain.StoredModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if model.ID == "" {
		model.ID = uuid.New().String()
	}
	r.models[model.Name] = append(r.models[model.Name], model)
	return nil
}

func (r *MemoryModelRepository) FindLatest(_ context.Context, name string) (*domain.StoredModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.models[name]
	if len(stored) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	return stored[len(stored)-1], nil
}

func (r *MemoryModelRepository) ListNames(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names, nil
}

// MemoryTrainingDocumentRepository is a TrainingDocumentRepository backed by a map.
type MemoryTrainingDocumentRepository struct {
	mu      sync.RWMutex
	corpora map[string][]domain.TrainingDocument
}

// NewMemoryTrainingDocumentRepository creates an empty in-memory corpus store.
func NewMemoryTrainingDocumentRepository() *MemoryTrainingDocumentRepository {
	return &MemoryTrainingDocumentRepository{corpora: make(map[string][]domain.TrainingDocument)}
}

func (r *MemoryTrainingDocumentRepository) FindByCorpus(_ context.Context, corpus string) ([]domain.TrainingDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.corpora[corpus], nil
}

func (r *MemoryTrainingDocumentRepository) SaveBatch(_ context.Context, corpus string, docs []domain.TrainingDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.corpora[corpus] = append(r.corpora[corpus], docs...)
	return nil
}

// MemoryModelCache is a ModelCache backed by a map. TTLs are honored so
// cache-expiry behavior can be exercised without Redis.
type MemoryModelCache struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	expiresAt time.Time
	blob      []byte
}

// NewMemoryModelCache creates an empty in-memory model cache.
func NewMemoryModelCache() *MemoryModelCache {
	return &MemoryModelCache{entries: make(map[string]memoryCacheEntry)}
}

func (c *MemoryModelCache) Get(_ context.Context, name string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[name]
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	return entry.blob, nil
}

func (c *MemoryModelCache) Set(_ context.Context, name string, blob []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := memoryCacheEntry{blob: blob}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries[name] = entry
	return nil
}

func (c *MemoryModelCache) Invalidate(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, name)
	return nil
}
