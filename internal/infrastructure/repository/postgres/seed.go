package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-dashboard/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo data set into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, u := range memory.SeedUsers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO users (public_id, email, role)
VALUES (:public_id, :email, :role)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": u.UserID,
			"email":     u.Email,
			"role":      u.Role,
		})
		if err != nil {
			return fmt.Errorf("bind seed user %s query: %w", u.UserID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed user %s: %w", u.UserID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := upsertPlayerTx(ctx, tx, p); err != nil {
			return fmt.Errorf("seed player: %w", err)
		}
	}

	for _, report := range memory.SeedScoutingReports() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO scouting_reports (public_id, player_public_id, scout_public_id, rating, potential, summary, created_at)
VALUES (:public_id, :player_public_id, :scout_public_id, :rating, :potential, :summary, :created_at)
ON CONFLICT (public_id) DO NOTHING`, scoutingReportRow{
			PublicID:  report.ID,
			PlayerID:  report.PlayerID,
			ScoutID:   report.ScoutID,
			Rating:    report.Rating,
			Potential: report.Potential,
			Summary:   report.Summary,
			CreatedAt: report.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed report %s query: %w", report.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed report %s: %w", report.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
