package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ch4s3/langler/domain"
	"github.com/Ch4s3/langler/service"
)

// TrainRequest represents the request body for model training. Either a list
// of inline documents or the name of a stored corpus must be supplied.
type TrainRequest struct {
	ModelName string                    `json:"model_name"`
	Corpus    string                    `json:"corpus"`
	Documents []domain.TrainingDocument `json:"documents"`
}

// TrainResponse represents the response for model training.
type TrainResponse struct {
	Success bool                    `json:"success"`
	Result  *service.TrainingResult `json:"result"`
}

// TrainHandler handles topic model training requests.
type TrainHandler struct {
	trainingService service.TrainingService
	logger          *slog.Logger
}

// NewTrainHandler creates a new train handler.
func NewTrainHandler(trainingService service.TrainingService, logger *slog.Logger) *TrainHandler {
	return &TrainHandler{
		trainingService: trainingService,
		logger:          logger,
	}
}

// HandleTrain handles POST /api/v1/train requests.
func (h *TrainHandler) HandleTrain(c echo.Context) error {
	ctx := c.Request().Context()

	var req TrainRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind train request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.ModelName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Model name cannot be empty")
	}
	if len(req.Documents) == 0 && req.Corpus == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Either documents or corpus must be provided")
	}

	var (
		result *service.TrainingResult
		err    error
	)
	if len(req.Documents) > 0 {
		result, err = h.trainingService.TrainFromDocuments(ctx, req.ModelName, req.Documents)
	} else {
		result, err = h.trainingService.TrainFromCorpus(ctx, req.ModelName, req.Corpus)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNoTrainingData) {
			h.logger.Warn("no trainable documents in request", "model", req.ModelName)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "No valid training documents")
		}
		h.logger.Error("training failed", "model", req.ModelName, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to train model")
	}

	return c.JSON(http.StatusOK, TrainResponse{Success: true, Result: result})
}
