package memory

import (
	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/roster"
)

// SeedPlayers is a small canonical-store fixture covering the matcher's
// edge cases: shared surnames, dual positions, rookie prices.
func SeedPlayers() []player.Record {
	return []player.Record{
		{ID: "afl-tdk", Name: "Tom De Koning", Team: "Carlton", Position: player.PositionRuck, Price: 900000, Breakeven: 90, Average: 92.5, Last3: 95.0, Last5: 91.2, Games: 11, Projected: 94, Status: player.StatusFit},
		{ID: "afl-sheezel", Name: "Harry Sheezel", Team: "North Melbourne", Position: player.PositionDefender, Price: 980000, Breakeven: 101, Average: 105.3, Last3: 110.0, Last5: 107.4, Games: 12, Projected: 106, Status: player.StatusFit},
		{ID: "afl-jsmith", Name: "John Smith", Team: "Geelong", Position: player.PositionMidfielder, Price: 650000, Breakeven: 60, Average: 71.0, Games: 9, Status: player.StatusFit},
		{ID: "afl-jasmith", Name: "Jack Smith", Team: "Richmond", Position: player.PositionForward, Price: 430000, Breakeven: 38, Average: 55.2, Games: 6, Status: player.StatusInjured},
		{ID: "afl-kako", Name: "Isaac Kako", Team: "Essendon", Position: player.PositionForward, Price: 280000, Breakeven: 12, Average: 61.8, Last3: 66.0, Games: 5, Projected: 63, Status: player.StatusFit},
		{ID: "afl-cumming", Name: "Isaac Cumming", Team: "GWS", Position: player.PositionDefender, Price: 520000, Breakeven: 55, Average: 64.0, Games: 10, Status: player.StatusFit},
		{ID: "afl-curnow", Name: "Charlie Curnow", Team: "Carlton", Position: player.PositionForward, Price: 820000, Breakeven: 80, Average: 84.6, Games: 12, Status: player.StatusFit},
		{ID: "afl-daicos", Name: "Nick Daicos", Team: "Collingwood", Position: player.PositionMidfielder, Price: 1050000, Breakeven: 118, Average: 112.9, Last3: 118.3, Last5: 115.0, Games: 12, Projected: 114, Status: player.StatusFit},
		{ID: "afl-rookie-def", Name: "Lachie Jaques", Team: "Hawthorn", Position: "DEF/MID", Price: 210000, Breakeven: -8, Average: 48.5, Games: 3, Projected: 52, Status: player.StatusFit},
	}
}

// SeedRoster distributes a subset of SeedPlayers into the four field
// buckets plus bench.
func SeedRoster() roster.Roster {
	players := SeedPlayers()
	byID := make(map[string]player.Record, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	r := roster.Roster{
		Defenders:   []player.Record{byID["afl-sheezel"], byID["afl-cumming"]},
		Midfielders: []player.Record{byID["afl-daicos"], byID["afl-jsmith"]},
		Rucks:       []player.Record{byID["afl-tdk"]},
		Forwards:    []player.Record{byID["afl-curnow"], byID["afl-jasmith"]},
		Bench: roster.Bench{
			Forwards: []player.Record{byID["afl-kako"]},
			Utility:  []player.Record{byID["afl-rookie-def"]},
		},
		CaptainID: "afl-daicos",
	}
	r.NormalizePlacement()

	return r
}
