package player

import "context"

// Repository describes canonical-store persistence needs from use cases.
// ReplaceAll persists the whole store in one write so implementations can
// honor the backup-before-mutation contract.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, bool, error)
	ReplaceAll(ctx context.Context, records []Record) error
}
