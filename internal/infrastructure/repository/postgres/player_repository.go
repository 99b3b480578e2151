package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	qb "github.com/riskibarqy/scouting-dashboard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"p.public_id",
	"p.name",
	"p.position",
	"p.age",
	"p.team",
	"p.nationality",
	"p.market_value",
	"p.contract_end",
	"p.goals",
	"p.assists",
	"(a.player_public_id IS NOT NULL) AS has_attributes",
	"a.pace",
	"a.shooting",
	"a.passing",
	"a.dribbling",
	"a.defending",
	"a.physical",
	"a.finishing",
	"a.crossing",
	"a.long_shots",
	"a.positioning",
	"a.diving",
	"a.handling",
	"a.kicking",
	"a.reflexes",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func basePlayerQuery() *qb.SelectBuilder {
	return qb.Select(playerSelectColumns...).
		From("players p").
		LeftJoin("player_attributes a", "a.player_public_id = p.public_id").
		Where(qb.IsNull("p.deleted_at"))
}

func buildPlayerListQuery(filter player.Filter) *qb.SelectBuilder {
	query := basePlayerQuery()
	if filter.Position != "" {
		query.Where(qb.Eq("p.position", string(filter.Position)))
	}
	if filter.Team != "" {
		query.Where(qb.Expr("LOWER(p.team) = LOWER(?)", filter.Team))
	}
	if filter.Nationality != "" {
		query.Where(qb.Expr("LOWER(p.nationality) = LOWER(?)", filter.Nationality))
	}
	if filter.MinAge > 0 {
		query.Where(qb.Gte("p.age", filter.MinAge))
	}
	if filter.MaxAge > 0 {
		query.Where(qb.Lte("p.age", filter.MaxAge))
	}
	if filter.Search != "" {
		query.Where(qb.ILike("p.name", "%"+filter.Search+"%"))
	}
	return query
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query, args, err := basePlayerQuery().OrderBy("p.id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerRow
	if err := selectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	return playerRowsToDomain(rows), nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) (player.Page, error) {
	base := buildPlayerListQuery(filter)

	countQuery, countArgs, err := base.Count().ToSQL()
	if err != nil {
		return player.Page{}, fmt.Errorf("build count players query: %w", err)
	}
	var total int
	if err := getContext(ctx, r.db, &total, countQuery, countArgs...); err != nil {
		return player.Page{}, fmt.Errorf("count players: %w", err)
	}

	query, args, err := base.OrderBy("p.name", "p.id").Limit(filter.Limit).Offset(filter.Offset).ToSQL()
	if err != nil {
		return player.Page{}, fmt.Errorf("build list players query: %w", err)
	}
	var rows []playerRow
	if err := selectContext(ctx, r.db, &rows, query, args...); err != nil {
		return player.Page{}, fmt.Errorf("list players: %w", err)
	}

	return player.Page{Items: playerRowsToDomain(rows), Total: total}, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := basePlayerQuery().Where(qb.Eq("p.public_id", playerID)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerRow
	if err := getContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player %s: %w", playerID, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert player tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertPlayerTx(ctx, tx, item); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert player %s: %w", item.ID, err)
	}
	return nil
}

func upsertPlayerTx(ctx context.Context, tx *sqlx.Tx, item player.Player) error {
	query, args, err := qb.UpsertModel("players", playerWriteModelFromDomain(item), "public_id")
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player %s: %w", item.ID, err)
	}

	if item.Attributes == nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM player_attributes WHERE player_public_id = $1`, item.ID); err != nil {
			return fmt.Errorf("clear player %s attributes: %w", item.ID, err)
		}
		return nil
	}

	query, args, err = qb.UpsertModel("player_attributes", attributesWriteModelFromDomain(item.ID, *item.Attributes), "player_public_id")
	if err != nil {
		return fmt.Errorf("build upsert player attributes query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player %s attributes: %w", item.ID, err)
	}
	return nil
}

func playerRowsToDomain(rows []playerRow) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
