package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	qb "github.com/riskibarqy/scouting-dashboard/internal/platform/querybuilder"
)

type scoutingReportRow struct {
	PublicID  string    `db:"public_id"`
	PlayerID  string    `db:"player_public_id"`
	ScoutID   string    `db:"scout_public_id"`
	Rating    int       `db:"rating"`
	Potential int       `db:"potential"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

type ScoutingReportRepository struct {
	db *sqlx.DB
}

func NewScoutingReportRepository(db *sqlx.DB) *ScoutingReportRepository {
	return &ScoutingReportRepository{db: db}
}

func (r *ScoutingReportRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("scouting_reports").Where(qb.IsNull("deleted_at")).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count scouting reports query: %w", err)
	}

	var total int
	if err := getContext(ctx, r.db, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count scouting reports: %w", err)
	}
	return total, nil
}

func (r *ScoutingReportRepository) ListByPlayer(ctx context.Context, playerID string) ([]scouting.Report, error) {
	query, args, err := qb.Select("public_id", "player_public_id", "scout_public_id", "rating", "potential", "summary", "created_at").
		From("scouting_reports").
		Where(qb.Eq("player_public_id", playerID), qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scouting reports query: %w", err)
	}

	var rows []scoutingReportRow
	if err := selectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scouting reports for player %s: %w", playerID, err)
	}

	out := make([]scouting.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, scouting.Report{
			ID:        row.PublicID,
			PlayerID:  row.PlayerID,
			ScoutID:   row.ScoutID,
			Rating:    row.Rating,
			Potential: row.Potential,
			Summary:   row.Summary,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
