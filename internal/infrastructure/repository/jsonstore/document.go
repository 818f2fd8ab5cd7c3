package jsonstore

import (
	"github.com/aflsquad/statpatch/internal/domain/player"
)

// playerDocument is the wire shape of one canonical-store entry. Earlier
// tooling generations wrote several spellings for the same field, so the
// document accepts every alias on read and writes all of them on save to
// keep legacy readers consistent.
type playerDocument struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
	Position string `json:"position,omitempty"`
	Price    int64  `json:"price,omitempty"`

	Breakeven      *int `json:"breakeven,omitempty"`
	BreakevenAlias *int `json:"breakEven,omitempty"`

	Average      *float64 `json:"avg,omitempty"`
	AverageAlias *float64 `json:"averagePoints,omitempty"`

	Last3     *float64 `json:"last3_avg,omitempty"`
	Last5     *float64 `json:"last5_avg,omitempty"`
	Games     *int     `json:"games,omitempty"`
	Projected *float64 `json:"projected_score,omitempty"`
	Status    string   `json:"status,omitempty"`
	IsOnBench bool     `json:"isOnBench,omitempty"`
}

func (d playerDocument) toDomain() player.Record {
	rec := player.Record{
		ID:        d.ID,
		Name:      d.Name,
		Team:      d.Team,
		Position:  player.Position(d.Position),
		Price:     d.Price,
		Status:    player.Status(d.Status),
		IsOnBench: d.IsOnBench,
	}

	rec.Breakeven = intAlias(d.Breakeven, d.BreakevenAlias)
	rec.Average = floatAlias(d.Average, d.AverageAlias)
	if d.Last3 != nil {
		rec.Last3 = *d.Last3
	}
	if d.Last5 != nil {
		rec.Last5 = *d.Last5
	}
	if d.Games != nil {
		rec.Games = *d.Games
	}
	if d.Projected != nil {
		rec.Projected = *d.Projected
	}

	return rec
}

func documentFromDomain(rec player.Record) playerDocument {
	breakeven := rec.Breakeven
	average := rec.Average
	last3 := rec.Last3
	last5 := rec.Last5
	games := rec.Games
	projected := rec.Projected

	return playerDocument{
		ID:             rec.ID,
		Name:           rec.Name,
		Team:           rec.Team,
		Position:       string(rec.Position),
		Price:          rec.Price,
		Breakeven:      &breakeven,
		BreakevenAlias: &breakeven,
		Average:        &average,
		AverageAlias:   &average,
		Last3:          &last3,
		Last5:          &last5,
		Games:          &games,
		Projected:      &projected,
		Status:         string(rec.Status),
		IsOnBench:      rec.IsOnBench,
	}
}

// intAlias prefers the canonical key and falls back to the legacy one.
func intAlias(canonical, legacy *int) int {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}

func floatAlias(canonical, legacy *float64) float64 {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}
