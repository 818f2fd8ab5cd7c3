package roster

import (
	"errors"
	"testing"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

func testRoster() Roster {
	return Roster{
		Defenders: []player.Record{
			{ID: "p1", Name: "Harry Sheezel", Position: player.PositionDefender},
		},
		Midfielders: []player.Record{
			{ID: "p2", Name: "Nick Daicos", Position: player.PositionMidfielder},
		},
		Rucks: []player.Record{
			{ID: "p3", Name: "Tom De Koning", Position: player.PositionRuck},
		},
		Forwards: []player.Record{
			{ID: "p4", Name: "Charlie Curnow", Position: player.PositionForward},
		},
		Bench: Bench{
			Forwards: []player.Record{
				{ID: "p5", Name: "Isaac Kako", Position: player.PositionForward, IsOnBench: true},
			},
			Utility: []player.Record{
				{ID: "p6", Name: "Riley Bice", Position: player.PositionDefender, IsOnBench: true},
			},
		},
		CaptainID: "p2",
	}
}

func TestOnFieldAndAll(t *testing.T) {
	r := testRoster()

	if got := len(r.OnField()); got != 4 {
		t.Fatalf("expected 4 on-field records, got %d", got)
	}
	if got := len(r.All()); got != 6 {
		t.Fatalf("expected 6 records in total, got %d", got)
	}
}

func TestReplaceKeepsPlacement(t *testing.T) {
	r := testRoster()

	// Incoming update carries a stale placement flag; the bucket wins.
	updated := player.Record{
		ID: "p5", Name: "Isaac Kako", Position: player.PositionForward,
		Price: 310000, IsOnBench: false,
	}
	if !r.Replace(updated) {
		t.Fatal("expected Replace to find p5")
	}

	got := r.Bench.Forwards[0]
	if got.Price != 310000 {
		t.Fatalf("expected updated price, got %d", got.Price)
	}
	if !got.IsOnBench {
		t.Fatal("bench record lost its bench placement")
	}

	fieldUpdate := player.Record{
		ID: "p1", Name: "Harry Sheezel", Position: player.PositionDefender,
		IsOnBench: true,
	}
	if !r.Replace(fieldUpdate) {
		t.Fatal("expected Replace to find p1")
	}
	if r.Defenders[0].IsOnBench {
		t.Fatal("field record gained a bench placement")
	}
}

func TestReplaceFallsBackToNameWithoutIDs(t *testing.T) {
	r := Roster{
		Rucks: []player.Record{
			{Name: "Tom De Koning", Position: player.PositionRuck, Price: 900000},
		},
		Defenders: []player.Record{
			{Name: "Harry Sheezel", Position: player.PositionDefender, Price: 800000},
		},
	}

	updated := player.Record{Name: "Tom De Koning", Position: player.PositionRuck, Price: 940000}
	if !r.Replace(updated) {
		t.Fatal("expected Replace to find the record by name")
	}
	if r.Rucks[0].Price != 940000 {
		t.Fatalf("expected updated price, got %d", r.Rucks[0].Price)
	}
	if r.Defenders[0].Price != 800000 {
		t.Fatalf("update leaked into another record: %+v", r.Defenders[0])
	}
}

func TestReplaceUnknownID(t *testing.T) {
	r := testRoster()

	if r.Replace(player.Record{ID: "nobody"}) {
		t.Fatal("expected Replace to miss an unrostered ID")
	}
}

func TestNormalizePlacement(t *testing.T) {
	r := testRoster()
	r.Defenders[0].IsOnBench = true
	r.Bench.Utility[0].IsOnBench = false

	r.NormalizePlacement()

	if r.Defenders[0].IsOnBench {
		t.Fatal("field record still flagged as benched")
	}
	if !r.Bench.Utility[0].IsOnBench {
		t.Fatal("bench record still flagged as on field")
	}
}

func TestSetCaptain(t *testing.T) {
	tests := []struct {
		name      string
		playerID  string
		targetErr error
	}{
		{name: "on-field player", playerID: "p3", targetErr: nil},
		{name: "bench player", playerID: "p5", targetErr: ErrBenchCaptain},
		{name: "utility player", playerID: "p6", targetErr: ErrBenchCaptain},
		{name: "unrostered player", playerID: "p99", targetErr: ErrNotRostered},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRoster()
			err := r.SetCaptain(tc.playerID)
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if r.CaptainID != tc.playerID {
					t.Fatalf("expected captain %s, got %s", tc.playerID, r.CaptainID)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
			if r.CaptainID != "p2" {
				t.Fatalf("captain changed on failed update: %s", r.CaptainID)
			}
		})
	}
}
