package reconcile

import (
	"testing"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

func TestMerge_OverlaysOnlyPresentFields(t *testing.T) {
	existing := player.Record{
		ID:        "p-1",
		Name:      "Tom De Koning",
		Team:      "Carlton",
		Position:  player.PositionRuck,
		Price:     900000,
		Breakeven: 90,
		Average:   92.5,
		Games:     11,
		IsOnBench: true,
	}

	price := int64(940000)
	breakeven := 94
	merged := Merge(existing, Correction{
		Name:      "Tom de konning",
		Price:     &price,
		Breakeven: &breakeven,
	})

	if merged.Price != 940000 || merged.Breakeven != 94 {
		t.Fatalf("correction fields not applied: %+v", merged)
	}
	if merged.ID != "p-1" {
		t.Fatalf("identity changed: %s", merged.ID)
	}
	if !merged.IsOnBench {
		t.Fatal("placement flag did not survive the merge")
	}
	if merged.Name != "Tom De Koning" || merged.Team != "Carlton" {
		t.Fatalf("untouched fields changed: %+v", merged)
	}
	if merged.Average != 92.5 || merged.Games != 11 {
		t.Fatalf("untouched stats changed: %+v", merged)
	}
}

func TestMerge_ExplicitZeroIsApplied(t *testing.T) {
	games := 0
	merged := Merge(player.Record{ID: "p-2", Name: "Jack Smith", Games: 7},
		Correction{Name: "Jack Smith", Games: &games})

	if merged.Games != 0 {
		t.Fatalf("explicit zero dropped: %d", merged.Games)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	existing := player.Record{ID: "p-3", Name: "Harry Sheezel", Price: 800000}
	price := int64(850000)
	_ = Merge(existing, Correction{Name: "Harry Sheezel", Price: &price})

	if existing.Price != 800000 {
		t.Fatalf("input record mutated: %d", existing.Price)
	}
}
