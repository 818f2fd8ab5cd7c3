package memory

import (
	"context"
	"sync"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

// PlayerRepository is the in-memory canonical store used by usecase
// tests and as a fixture backend.
type PlayerRepository struct {
	mu      sync.RWMutex
	records []player.Record
	index   map[string]int
}

func NewPlayerRepository(records []player.Record) *PlayerRepository {
	r := &PlayerRepository{}
	r.reset(records)
	return r
}

func (r *PlayerRepository) reset(records []player.Record) {
	r.records = append([]player.Record(nil), records...)
	r.index = make(map[string]int, len(records))
	for i, rec := range r.records {
		r.index[rec.ID] = i
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Record, 0, len(r.records))
	out = append(out, r.records...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return player.Record{}, false, nil
	}

	return r.records[i], true, nil
}

func (r *PlayerRepository) ReplaceAll(_ context.Context, records []player.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset(records)

	return nil
}
