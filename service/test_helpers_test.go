package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Ch4s3/langler/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

// fakeModelRepo is an in-memory ModelRepository.
type fakeModelRepo struct {
	models  map[string][]*domain.StoredModel
	saveErr error
	findErr error
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{models: make(map[string][]*domain.StoredModel)}
}

func (r *fakeModelRepo) Save(_ context.Context, model *domain.StoredModel) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if model.ID == "" {
		model.ID = fmt.Sprintf("model-%d", len(r.models[model.Name])+1)
	}
	r.models[model.Name] = append(r.models[model.Name], model)
	return nil
}

func (r *fakeModelRepo) FindLatest(_ context.Context, name string) (*domain.StoredModel, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored := r.models[name]
	if len(stored) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	return stored[len(stored)-1], nil
}

func (r *fakeModelRepo) ListNames(_ context.Context) ([]string, error) {
	var names []string
	for name := range r.models {
		names = append(names, name)
	}
	return names, nil
}

// fakeDocRepo is an in-memory TrainingDocumentRepository.
type fakeDocRepo struct {
	corpora map[string][]domain.TrainingDocument
	findErr error
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{corpora: make(map[string][]domain.TrainingDocument)}
}

func (r *fakeDocRepo) FindByCorpus(_ context.Context, corpus string) ([]domain.TrainingDocument, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.corpora[corpus], nil
}

func (r *fakeDocRepo) SaveBatch(_ context.Context, corpus string, docs []domain.TrainingDocument) error {
	r.corpora[corpus] = append(r.corpora[corpus], docs...)
	return nil
}

// fakeCache is an in-memory ModelCache.
type fakeCache struct {
	entries     map[string][]byte
	gets        int
	sets        int
	invalidates int
	getErr      error
	setErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, name string) ([]byte, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	blob, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	return blob, nil
}

func (c *fakeCache) Set(_ context.Context, name string, blob []byte, _ time.Duration) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[name] = blob
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, name string) error {
	c.invalidates++
	delete(c.entries, name)
	return nil
}

func sampleDocs() []domain.TrainingDocument {
	return []domain.TrainingDocument{
		{Content: "stocks rally amid economic growth", Topics: []string{"finance"}},
		{Content: "team wins championship game", Topics: []string{"sports"}},
	}
}
