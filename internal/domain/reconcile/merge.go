package reconcile

import "github.com/aflsquad/statpatch/internal/domain/player"

// Correction is one hand-verified field set keyed by a human-supplied
// name. Optional fields are pointers so an absent field is
// distinguishable from an explicit zero.
type Correction struct {
	Name      string           `json:"name" validate:"required"`
	Team      *string          `json:"team,omitempty"`
	Position  *player.Position `json:"position,omitempty"`
	Price     *int64           `json:"price,omitempty" validate:"omitempty,gte=0"`
	Breakeven *int             `json:"breakeven,omitempty"`
	Average   *float64         `json:"avg,omitempty"`
	Last3     *float64         `json:"last3_avg,omitempty"`
	Last5     *float64         `json:"last5_avg,omitempty"`
	Games     *int             `json:"games,omitempty" validate:"omitempty,gte=0"`
	Projected *float64         `json:"projected_score,omitempty"`
	Status    *player.Status   `json:"status,omitempty"`
}

// Merge overlays the correction onto an existing record. Pure and total:
// fields absent from the correction (identity and placement included)
// pass through untouched.
func Merge(existing player.Record, c Correction) player.Record {
	out := existing

	if c.Team != nil {
		out.Team = *c.Team
	}
	if c.Position != nil {
		out.Position = *c.Position
	}
	if c.Price != nil {
		out.Price = *c.Price
	}
	if c.Breakeven != nil {
		out.Breakeven = *c.Breakeven
	}
	if c.Average != nil {
		out.Average = *c.Average
	}
	if c.Last3 != nil {
		out.Last3 = *c.Last3
	}
	if c.Last5 != nil {
		out.Last5 = *c.Last5
	}
	if c.Games != nil {
		out.Games = *c.Games
	}
	if c.Projected != nil {
		out.Projected = *c.Projected
	}
	if c.Status != nil {
		out.Status = *c.Status
	}

	return out
}
