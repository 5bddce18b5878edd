package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/courtsight/nba-analytics/internal/platform/logging"
	"github.com/courtsight/nba-analytics/internal/usecase"
)

type Handler struct {
	pipelineService *usecase.PipelineService
	tradeService    *usecase.TradeService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	pipelineService *usecase.PipelineService,
	tradeService *usecase.TradeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		pipelineService: pipelineService,
		tradeService:    tradeService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// RunPipeline starts a full ETL run in the background and returns
// immediately. A second trigger while a run is in flight gets a conflict.
func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPipeline")
	defer span.End()

	if h.pipelineService == nil {
		writeError(ctx, w, fmt.Errorf("%w: pipeline service is not configured", usecase.ErrDependencyUnavailable))
		return
	}
	if h.pipelineService.Active() {
		writeError(ctx, w, fmt.Errorf("%w: a run is already in flight", usecase.ErrPipelineActive))
		return
	}

	// The run outlives the request; detach from its cancellation but keep
	// the trace linkage.
	runCtx := context.WithoutCancel(ctx)
	go func() {
		if _, err := h.pipelineService.Run(runCtx); err != nil {
			h.logger.ErrorContext(runCtx, "background pipeline run failed", "error", err)
		}
	}()

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) PipelineStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PipelineStatus")
	defer span.End()

	report, err := h.pipelineService.Status(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "pipeline status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pipelineStatusDTO{
		Active: h.pipelineService.Active(),
		Report: report,
	})
}

func (h *Handler) ValidateTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateTrade")
	defer span.End()

	var req tradeValidateRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(ctx, w, fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.tradeService.ValidateTrade(ctx, req.PlayersA, req.PlayersB, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "trade validation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
