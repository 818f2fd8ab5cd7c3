package player

import (
	"fmt"
	"strings"
)

// Position is a coarse AFL role tag. Dual-position players carry a
// slash-joined tag such as "DEF/MID".
type Position string

const (
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionRuck       Position = "RUC"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionRuck:       {},
	PositionForward:    {},
}

// ParsePosition validates a raw position tag, including dual tags.
func ParsePosition(raw string) (Position, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return "", fmt.Errorf("position is required")
	}

	for _, part := range strings.Split(value, "/") {
		if _, ok := AllPositions[Position(part)]; !ok {
			return "", fmt.Errorf("invalid position tag: %s", part)
		}
	}

	return Position(value), nil
}

// Status marks availability as reported by the stats feed.
type Status string

const (
	StatusFit       Status = "fit"
	StatusInjured   Status = "injured"
	StatusSuspended Status = "suspended"
)

// Record is one canonical-store entry for a fantasy-priced AFL player.
// Identity is the opaque ID assigned at import time; Name is display
// data and is not guaranteed stable in spelling across sources.
type Record struct {
	ID        string
	Name      string
	Team      string
	Position  Position
	Price     int64
	Breakeven int
	Average   float64
	Last3     float64
	Last5     float64
	Games     int
	Projected float64
	Status    Status
	// IsOnBench is a placement flag owned by whichever roster bucket
	// holds the record, not an intrinsic property of the player.
	IsOnBench bool
}

// SameIdentity reports whether two records refer to the same player.
// Records loaded from legacy store files carry no ID; identity then
// falls back to the exact stored name.
func SameIdentity(a, b Record) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}

	return a.Name == b.Name
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if _, err := ParsePosition(string(r.Position)); err != nil {
		return fmt.Errorf("player %q: %w", r.Name, err)
	}
	if r.Price < 0 {
		return fmt.Errorf("player %q: price must not be negative", r.Name)
	}
	if r.Games < 0 {
		return fmt.Errorf("player %q: games must not be negative", r.Name)
	}

	return nil
}
