package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardStats")
	defer span.End()

	principal, _ := principalFromContext(ctx)

	report, err := h.dashboardService.BuildReport(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build dashboard report failed", "user_id", userIDOrAnonymous(principal), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardReportToDTO(report))
}

func userIDOrAnonymous(p user.Principal) string {
	if p.UserID == "" {
		return "anonymous"
	}
	return p.UserID
}
