package postgres

import (
	"time"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

type playerTableModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Team      string     `db:"team"`
	Position  string     `db:"position"`
	Price     int64      `db:"price"`
	Breakeven int        `db:"breakeven"`
	Average   float64    `db:"avg"`
	Last3     float64    `db:"last3_avg"`
	Last5     float64    `db:"last5_avg"`
	Games     int        `db:"games"`
	Projected float64    `db:"projected_score"`
	Status    string     `db:"status"`
	IsOnBench bool       `db:"is_on_bench"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m playerTableModel) toDomain() player.Record {
	return player.Record{
		ID:        m.ID,
		Name:      m.Name,
		Team:      m.Team,
		Position:  player.Position(m.Position),
		Price:     m.Price,
		Breakeven: m.Breakeven,
		Average:   m.Average,
		Last3:     m.Last3,
		Last5:     m.Last5,
		Games:     m.Games,
		Projected: m.Projected,
		Status:    player.Status(m.Status),
		IsOnBench: m.IsOnBench,
	}
}
