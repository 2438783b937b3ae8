package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ch4s3/langler/domain"
)

// ModelRepository implementation.
type modelRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewModelRepository creates a new model repository.
func NewModelRepository(db *pgxpool.Pool, logger *slog.Logger) ModelRepository {
	return &modelRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists a serialized model blob under its name.
func (r *modelRepository) Save(ctx context.Context, model *domain.StoredModel) error {
	r.logger.InfoContext(ctx, "saving topic model", "name", model.Name, "blob_size", len(model.Blob))

	if model.ID == "" {
		model.ID = uuid.New().String()
	}

	query := `
		INSERT INTO topic_models (id, name, model, trained_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.Exec(ctx, query, model.ID, model.Name, model.Blob, model.TrainedAt); err != nil {
		r.logger.ErrorContext(ctx, "failed to save topic model", "error", err, "name", model.Name)
		return fmt.Errorf("save topic model %s: %w", model.Name, err)
	}

	return nil
}

// FindLatest returns the most recently trained model stored under name.
func (r *modelRepository) FindLatest(ctx context.Context, name string) (*domain.StoredModel, error) {
	query := `
		SELECT id, name, model, trained_at
		FROM topic_models
		WHERE name = $1
		ORDER BY trained_at DESC
		LIMIT 1
	`

	var model domain.StoredModel

	err := r.db.QueryRow(ctx, query, name).Scan(&model.ID, &model.Name, &model.Blob, &model.TrainedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
		}
		r.logger.ErrorContext(ctx, "failed to find topic model", "error", err, "name", name)
		return nil, fmt.Errorf("find topic model %s: %w", name, err)
	}

	return &model, nil
}

// ListNames returns the distinct model names currently stored.
func (r *modelRepository) ListNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT name FROM topic_models ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list model names", "error", err)
		return nil, fmt.Errorf("list model names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan model name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list model names: %w", err)
	}

	return names, nil
}
