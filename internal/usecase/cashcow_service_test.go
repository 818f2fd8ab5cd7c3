package usecase

import (
	"testing"

	"github.com/aflsquad/statpatch/internal/infrastructure/repository/memory"
)

func TestCashCowService_ListCashCows_SortedByMargin(t *testing.T) {
	playerService := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), nil)
	svc := NewCashCowService(playerService, 300000)

	cows, err := svc.ListCashCows(t.Context())
	if err != nil {
		t.Fatalf("list cash cows failed: %v", err)
	}

	if len(cows) != 2 {
		t.Fatalf("unexpected cash cow count: %d", len(cows))
	}
	if cows[0].Record.ID != "afl-rookie-def" || cows[1].Record.ID != "afl-kako" {
		t.Fatalf("unexpected order: %s, %s", cows[0].Record.ID, cows[1].Record.ID)
	}
	if cows[0].Margin <= cows[1].Margin {
		t.Fatalf("margins not descending: %f then %f", cows[0].Margin, cows[1].Margin)
	}
}

func TestCashCowService_ListCashCows_PriceCeilingExcludesPremiums(t *testing.T) {
	playerService := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), nil)
	svc := NewCashCowService(playerService, 300000)

	cows, err := svc.ListCashCows(t.Context())
	if err != nil {
		t.Fatalf("list cash cows failed: %v", err)
	}

	for _, cow := range cows {
		if cow.Record.Price > 300000 {
			t.Fatalf("premium leaked into cash cows: %+v", cow.Record)
		}
		if cow.Margin <= 0 {
			t.Fatalf("non-rising player leaked into cash cows: %+v", cow.Record)
		}
	}
}
