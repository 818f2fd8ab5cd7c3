package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

const defaultCashCowMaxPrice = 300000

// CashCow is a cheap player whose scoring is outrunning their breakeven,
// so their price is expected to climb.
type CashCow struct {
	Record player.Record
	Margin float64
}

type CashCowService struct {
	playerService *PlayerService
	maxPrice      int64
}

func NewCashCowService(playerService *PlayerService, maxPrice int64) *CashCowService {
	if maxPrice <= 0 {
		maxPrice = defaultCashCowMaxPrice
	}
	return &CashCowService{
		playerService: playerService,
		maxPrice:      maxPrice,
	}
}

// ListCashCows returns rookie-priced players with Average above Breakeven,
// sorted by margin descending so the fastest risers come first.
func (s *CashCowService) ListCashCows(ctx context.Context) ([]CashCow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CashCowService.ListCashCows")
	defer span.End()

	records, err := s.playerService.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for cash cows: %w", err)
	}

	cows := make([]CashCow, 0, len(records))
	for _, rec := range records {
		if rec.Price > s.maxPrice {
			continue
		}
		margin := rec.Average - float64(rec.Breakeven)
		if margin <= 0 {
			continue
		}
		cows = append(cows, CashCow{Record: rec, Margin: margin})
	}

	sort.SliceStable(cows, func(i, j int) bool {
		if cows[i].Margin != cows[j].Margin {
			return cows[i].Margin > cows[j].Margin
		}
		return cows[i].Record.Name < cows[j].Record.Name
	})

	return cows, nil
}
