package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aflsquad/statpatch/internal/domain/roster"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

type RosterService struct {
	rosterRepo roster.Repository
	logger     *logging.Logger
}

func NewRosterService(rosterRepo roster.Repository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

func (s *RosterService) GetRoster(ctx context.Context) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetRoster")
	defer span.End()

	current, err := s.rosterRepo.Get(ctx)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("get roster: %w", err)
	}

	return current, nil
}

// SetCaptain promotes an on-field player to captain and persists the
// roster. Bench players are rejected without touching storage.
func (s *RosterService) SetCaptain(ctx context.Context, playerID string) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SetCaptain")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return roster.Roster{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	current, err := s.rosterRepo.Get(ctx)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("get roster: %w", err)
	}

	if err := current.SetCaptain(playerID); err != nil {
		switch {
		case errors.Is(err, roster.ErrNotRostered):
			return roster.Roster{}, fmt.Errorf("%w: player=%s is not rostered", ErrNotFound, playerID)
		case errors.Is(err, roster.ErrBenchCaptain):
			return roster.Roster{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return roster.Roster{}, fmt.Errorf("set captain: %w", err)
		}
	}

	if err := s.rosterRepo.Save(ctx, current); err != nil {
		return roster.Roster{}, fmt.Errorf("save roster: %w", err)
	}

	s.logger.InfoContext(ctx, "captain updated", "player_id", playerID)

	return current, nil
}
