package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/aflsquad/statpatch/internal/domain/player"
	playermock "github.com/aflsquad/statpatch/internal/mocks/domain/player"
)

func TestPlayerService_GetPlayer_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, nil)

	expected := player.Record{
		ID:       "afl-daicos",
		Name:     "Nick Daicos",
		Team:     "Collingwood",
		Position: player.PositionMidfielder,
		Price:    1050000,
		Status:   player.StatusFit,
	}

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "afl-daicos").
		Return(expected, true, nil).
		Once()

	got, err := service.GetPlayer(ctx, "afl-daicos")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != expected.Name {
		t.Fatalf("unexpected player name: got=%s want=%s", got.Name, expected.Name)
	}
}

func TestPlayerService_GetPlayer_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, nil)

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "afl-missing").
		Return(player.Record{}, false, nil).
		Once()

	_, err := service.GetPlayer(ctx, "afl-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_ListPlayers_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo, nil)

	playerRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, errors.New("store unreadable")).
		Once()

	if _, err := service.ListPlayers(ctx); err == nil {
		t.Fatal("expected repository error to propagate")
	}
}
