package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/extractor"
)

// ExtractRequest represents the request body for article extraction. Either
// raw HTML or a URL to download must be supplied; when both are present the
// inline HTML wins.
type ExtractRequest struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

// ArticleFetcher downloads an article page and extracts its body.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, rawURL string) (*domain.Article, error)
}

// ExtractHandler handles article body extraction requests.
type ExtractHandler struct {
	fetcher ArticleFetcher
	logger  *slog.Logger
}

// NewExtractHandler creates a new extract handler.
func NewExtractHandler(fetcher ArticleFetcher, logger *slog.Logger) *ExtractHandler {
	return &ExtractHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// HandleExtract handles POST /api/v1/extract requests. Inline HTML is
// extracted directly; a bare URL is downloaded first and then extracted.
func (h *ExtractHandler) HandleExtract(c echo.Context) error {
	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind extract request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.HTML == "" && req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Either html or url must be provided")
	}

	if req.HTML == "" {
		return h.fetchAndExtract(c, req.URL)
	}

	article, err := extractor.Extract(req.HTML, req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrNoArticleContent) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "No article content found")
		}
		h.logger.Error("extraction failed", "url", req.URL, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to extract article")
	}

	return c.JSON(http.StatusOK, article)
}

func (h *ExtractHandler) fetchAndExtract(c echo.Context, rawURL string) error {
	article, err := h.fetcher.FetchArticle(c.Request().Context(), rawURL)
	if err != nil {
		if errors.Is(err, domain.ErrNoArticleContent) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "No article content found")
		}
		h.logger.Error("failed to fetch article", "url", rawURL, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to fetch article")
	}

	// Nil article with nil error means the URL was skipped as non-HTML.
	if article == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "URL does not point at an article")
	}

	return c.JSON(http.StatusOK, article)
}
