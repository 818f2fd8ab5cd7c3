package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/platform/cache"
)

const playerListCacheKey = "players:list"

type PlayerService struct {
	playerRepo player.Repository
	cache      *cache.Store
}

// NewPlayerService builds the read-side player service. cacheStore may be
// nil, in which case every call hits the repository.
func NewPlayerService(playerRepo player.Repository, cacheStore *cache.Store) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		cache:      cacheStore,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if s.cache == nil {
		records, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return records, nil
	}

	value, err := s.cache.GetOrLoad(ctx, playerListCacheKey, func(ctx context.Context) (any, error) {
		return s.playerRepo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	records, ok := value.([]player.Record)
	if !ok {
		return nil, fmt.Errorf("list players: unexpected cache payload %T", value)
	}

	return records, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Record{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	record, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Record{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Record{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return record, nil
}
