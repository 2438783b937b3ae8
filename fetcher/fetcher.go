// Package fetcher downloads article pages and runs body extraction on them.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/extractor"
)

// maxBodyBytes caps how much of a response we read; article pages beyond
// this are almost certainly not articles.
const maxBodyBytes = 10 << 20

// Fetcher retrieves article pages over HTTP and extracts their bodies.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

// New creates a Fetcher with the given request timeout.
func New(timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// FetchArticle downloads the page at rawURL and extracts its article body.
// Non-HTML resources (podcast mp3 links in feeds) are skipped with a nil
// article and nil error.
func (f *Fetcher) FetchArticle(ctx context.Context, rawURL string) (*domain.Article, error) {
	if strings.HasSuffix(rawURL, ".mp3") {
		f.logger.InfoContext(ctx, "skipping non-article URL", "url", rawURL)
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to fetch page", "url", rawURL, "error", err)
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.ErrorContext(ctx, "unexpected status fetching page", "url", rawURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", rawURL, err)
	}

	extracted, err := extractor.Extract(string(body), rawURL)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to extract article", "url", rawURL, "error", err)
		return nil, fmt.Errorf("extract %s: %w", rawURL, err)
	}

	f.logger.InfoContext(ctx, "article fetched", "url", rawURL, "title", extracted.Title, "content_length", extracted.Length)

	return &domain.Article{
		ID:      uuid.New().String(),
		Title:   extracted.Title,
		Content: extracted.Content,
		URL:     rawURL,
	}, nil
}
