package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/scouting-dashboard/internal/usecase"
)

type listPlayersQuery struct {
	Position    string `validate:"omitempty,alpha,max=3"`
	Team        string `validate:"omitempty,max=120"`
	Nationality string `validate:"omitempty,max=120"`
	Search      string `validate:"omitempty,max=120"`
	MinAge      int    `validate:"gte=0,lte=100"`
	MaxAge      int    `validate:"gte=0,lte=100"`
	Page        int    `validate:"gte=0"`
	PageSize    int    `validate:"gte=0,lte=100"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query, err := parseListPlayersQuery(r)
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.ListPlayers(ctx, usecase.ListPlayersInput{
		Position:    query.Position,
		Team:        query.Team,
		Nationality: query.Nationality,
		Search:      query.Search,
		MinAge:      query.MinAge,
		MaxAge:      query.MaxAge,
		Page:        query.Page,
		PageSize:    query.PageSize,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageDTO{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListPlayerReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerReports")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	reports, err := h.reportService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player reports failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoutingReportDTO, 0, len(reports))
	for _, item := range reports {
		items = append(items, scoutingReportToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseListPlayersQuery(r *http.Request) (listPlayersQuery, error) {
	q := r.URL.Query()
	out := listPlayersQuery{
		Position:    strings.TrimSpace(q.Get("position")),
		Team:        strings.TrimSpace(q.Get("team")),
		Nationality: strings.TrimSpace(q.Get("nationality")),
		Search:      strings.TrimSpace(q.Get("search")),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{key: "min_age", dst: &out.MinAge},
		{key: "max_age", dst: &out.MaxAge},
		{key: "page", dst: &out.Page},
		{key: "page_size", dst: &out.PageSize},
	}
	for _, item := range ints {
		raw := strings.TrimSpace(q.Get(item.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return listPlayersQuery{}, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, item.key)
		}
		*item.dst = v
	}

	return out, nil
}
