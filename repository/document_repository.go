package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ch4s3/langler/domain"
)

// TrainingDocumentRepository implementation.
type trainingDocumentRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewTrainingDocumentRepository creates a new training document repository.
func NewTrainingDocumentRepository(db *pgxpool.Pool, logger *slog.Logger) TrainingDocumentRepository {
	return &trainingDocumentRepository{
		db:     db,
		logger: logger,
	}
}

// FindByCorpus loads every labeled document stored under a corpus name.
// Topic labels live in a text[] column, so each row maps directly onto a
// TrainingDocument.
func (r *trainingDocumentRepository) FindByCorpus(ctx context.Context, corpus string) ([]domain.TrainingDocument, error) {
	query := `
		SELECT content, topics
		FROM training_documents
		WHERE corpus = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, corpus)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to query training documents", "error", err, "corpus", corpus)
		return nil, fmt.Errorf("find training documents for %s: %w", corpus, err)
	}
	defer rows.Close()

	var docs []domain.TrainingDocument
	for rows.Next() {
		var doc domain.TrainingDocument
		if err := rows.Scan(&doc.Content, &doc.Topics); err != nil {
			return nil, fmt.Errorf("scan training document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find training documents for %s: %w", corpus, err)
	}

	r.logger.InfoContext(ctx, "loaded training documents", "corpus", corpus, "count", len(docs))

	return docs, nil
}

// SaveBatch stores labeled documents under a corpus name in one batch.
func (r *trainingDocumentRepository) SaveBatch(ctx context.Context, corpus string, docs []domain.TrainingDocument) error {
	if len(docs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO training_documents (id, corpus, content, topics)
		VALUES ($1, $2, $3, $4)
	`

	for _, doc := range docs {
		batch.Queue(query, uuid.New().String(), corpus, doc.Content, doc.Topics)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range docs {
		if _, err := results.Exec(); err != nil {
			r.logger.ErrorContext(ctx, "failed to save training documents", "error", err, "corpus", corpus)
			return fmt.Errorf("save training documents for %s: %w", corpus, err)
		}
	}

	return nil
}
