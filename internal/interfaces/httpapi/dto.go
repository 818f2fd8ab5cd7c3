package httpapi

import (
	"context"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/roster"
	"github.com/aflsquad/statpatch/internal/usecase"
)

type playerDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Position  string  `json:"position"`
	Price     int64   `json:"price"`
	Breakeven int     `json:"breakeven"`
	Average   float64 `json:"avg"`
	Last3     float64 `json:"last3_avg"`
	Last5     float64 `json:"last5_avg"`
	Games     int     `json:"games"`
	Projected float64 `json:"projected_score"`
	Status    string  `json:"status"`
	IsOnBench bool    `json:"isOnBench"`
}

type cashCowDTO struct {
	playerDTO
	Margin float64 `json:"margin"`
}

type benchDTO struct {
	Defenders   []playerDTO `json:"defenders"`
	Midfielders []playerDTO `json:"midfielders"`
	Rucks       []playerDTO `json:"rucks"`
	Forwards    []playerDTO `json:"forwards"`
	Utility     []playerDTO `json:"utility"`
}

type rosterDTO struct {
	Defenders   []playerDTO `json:"defenders"`
	Midfielders []playerDTO `json:"midfielders"`
	Rucks       []playerDTO `json:"rucks"`
	Forwards    []playerDTO `json:"forwards"`
	Bench       benchDTO    `json:"bench"`
	CaptainID   string      `json:"captain_id"`
}

func playerToDTO(v player.Record) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Team:      v.Team,
		Position:  string(v.Position),
		Price:     v.Price,
		Breakeven: v.Breakeven,
		Average:   v.Average,
		Last3:     v.Last3,
		Last5:     v.Last5,
		Games:     v.Games,
		Projected: v.Projected,
		Status:    string(v.Status),
		IsOnBench: v.IsOnBench,
	}
}

func playersToDTO(records []player.Record) []playerDTO {
	items := make([]playerDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, playerToDTO(rec))
	}
	return items
}

func cashCowToDTO(v usecase.CashCow) cashCowDTO {
	return cashCowDTO{
		playerDTO: playerToDTO(v.Record),
		Margin:    v.Margin,
	}
}

func rosterToDTO(ctx context.Context, v roster.Roster) rosterDTO {
	ctx, span := startSpan(ctx, "httpapi.rosterToDTO")
	defer span.End()

	return rosterDTO{
		Defenders:   playersToDTO(v.Defenders),
		Midfielders: playersToDTO(v.Midfielders),
		Rucks:       playersToDTO(v.Rucks),
		Forwards:    playersToDTO(v.Forwards),
		Bench: benchDTO{
			Defenders:   playersToDTO(v.Bench.Defenders),
			Midfielders: playersToDTO(v.Bench.Midfielders),
			Rucks:       playersToDTO(v.Bench.Rucks),
			Forwards:    playersToDTO(v.Bench.Forwards),
			Utility:     playersToDTO(v.Bench.Utility),
		},
		CaptainID: v.CaptainID,
	}
}
