package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/service"
)

// ClassifyRequest represents the request body for document classification.
type ClassifyRequest struct {
	ModelName string `json:"model_name"`
	Text      string `json:"text"`
}

// ClassifyResponse represents the response for document classification.
type ClassifyResponse struct {
	ModelName string              `json:"model_name"`
	Topics    []domain.TopicScore `json:"topics"`
}

// ModelsResponse represents the response listing stored models.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// ClassifyHandler handles document classification requests.
type ClassifyHandler struct {
	classificationService service.ClassificationService
	logger                *slog.Logger
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(classificationService service.ClassificationService, logger *slog.Logger) *ClassifyHandler {
	return &ClassifyHandler{
		classificationService: classificationService,
		logger:                logger,
	}
}

// HandleClassify handles POST /api/v1/classify requests.
func (h *ClassifyHandler) HandleClassify(c echo.Context) error {
	ctx := c.Request().Context()

	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind classify request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.ModelName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Model name cannot be empty")
	}

	scores, err := h.classificationService.ClassifyText(ctx, req.ModelName, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyDocument):
			return echo.NewHTTPError(http.StatusBadRequest, "Text cannot be empty")
		case errors.Is(err, domain.ErrModelNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Model not found")
		case errors.Is(err, domain.ErrModelDecode):
			h.logger.Error("stored model is corrupt", "model", req.ModelName, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Stored model is not usable")
		default:
			h.logger.Error("classification failed", "model", req.ModelName, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to classify document")
		}
	}

	return c.JSON(http.StatusOK, ClassifyResponse{ModelName: req.ModelName, Topics: scores})
}

// HandleListModels handles GET /api/v1/models requests.
func (h *ClassifyHandler) HandleListModels(c echo.Context) error {
	names, err := h.classificationService.ListModels(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list models", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list models")
	}

	return c.JSON(http.StatusOK, ModelsResponse{Models: names})
}
