package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aflsquad/statpatch/internal/domain/player"
	qb "github.com/aflsquad/statpatch/internal/platform/querybuilder"
)

// PlayerRepository serves the canonical dataset from Postgres for API
// deployments that outgrow the JSON file store.
type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"team",
	"position",
	"price",
	"breakeven",
	"avg",
	"last3_avg",
	"last5_avg",
	"games",
	"projected_score",
	"status",
	"is_on_bench",
	"created_at",
	"updated_at",
	"deleted_at",
}

var playerInsertColumns = []string{
	"id",
	"name",
	"team",
	"position",
	"price",
	"breakeven",
	"avg",
	"last3_avg",
	"last5_avg",
	"games",
	"projected_score",
	"status",
	"is_on_bench",
}

const playerUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
name = EXCLUDED.name,
team = EXCLUDED.team,
position = EXCLUDED.position,
price = EXCLUDED.price,
breakeven = EXCLUDED.breakeven,
avg = EXCLUDED.avg,
last3_avg = EXCLUDED.last3_avg,
last5_avg = EXCLUDED.last5_avg,
games = EXCLUDED.games,
projected_score = EXCLUDED.projected_score,
status = EXCLUDED.status,
is_on_bench = EXCLUDED.is_on_bench,
updated_at = NOW(),
deleted_at = NULL`

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Record, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Record, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Record{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Record{}, false, nil
		}
		return player.Record{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

// ReplaceAll upserts the incoming set and soft-deletes anything no
// longer present, all in one transaction so readers never observe a
// half-replaced store.
func (r *PlayerRepository) ReplaceAll(ctx context.Context, records []player.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace players tx: %w", err)
	}
	defer tx.Rollback()

	if len(records) == 0 {
		if _, err := tx.ExecContext(ctx,
			"UPDATE players SET deleted_at = NOW() WHERE deleted_at IS NULL"); err != nil {
			return fmt.Errorf("soft-delete all players: %w", err)
		}
		return tx.Commit()
	}

	builder := qb.InsertInto("players").Columns(playerInsertColumns...)
	keepIDs := make([]any, 0, len(records))
	for _, rec := range records {
		builder.Values(
			rec.ID, rec.Name, rec.Team, string(rec.Position), rec.Price,
			rec.Breakeven, rec.Average, rec.Last3, rec.Last5, rec.Games,
			rec.Projected, string(rec.Status), rec.IsOnBench,
		)
		keepIDs = append(keepIDs, rec.ID)
	}
	query, args, err := builder.Suffix(playerUpsertSuffix).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}

	deleteQuery, deleteArgs, err := deleteMissingPlayersSQL(keepIDs)
	if err != nil {
		return fmt.Errorf("build soft-delete query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("soft-delete replaced players: %w", err)
	}

	return tx.Commit()
}

func deleteMissingPlayersSQL(keepIDs []any) (string, []any, error) {
	query, args, err := sqlx.In(
		"UPDATE players SET deleted_at = NOW() WHERE deleted_at IS NULL AND id NOT IN (?)",
		keepIDs,
	)
	if err != nil {
		return "", nil, err
	}

	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}
