package memory

import (
	"context"
	"sync"

	"github.com/aflsquad/statpatch/internal/domain/roster"
)

type RosterRepository struct {
	mu     sync.RWMutex
	roster roster.Roster
}

func NewRosterRepository(r roster.Roster) *RosterRepository {
	r.NormalizePlacement()
	return &RosterRepository{roster: r}
}

func (repo *RosterRepository) Get(_ context.Context) (roster.Roster, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.roster, nil
}

func (repo *RosterRepository) Save(_ context.Context, r roster.Roster) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r.NormalizePlacement()
	repo.roster = r

	return nil
}
