package roster

import "context"

// Repository persists the single team roster document. Save must back up
// the previous state before overwriting it.
type Repository interface {
	Get(ctx context.Context) (Roster, error)
	Save(ctx context.Context, r Roster) error
}
