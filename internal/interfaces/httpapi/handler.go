package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
	"github.com/riskibarqy/scouting-dashboard/internal/usecase"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	playerService    *usecase.PlayerService
	reportService    *usecase.ScoutingReportService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	playerService *usecase.PlayerService,
	reportService *usecase.ScoutingReportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		playerService:    playerService,
		reportService:    reportService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
