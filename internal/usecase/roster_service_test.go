package usecase

import (
	"errors"
	"testing"

	"github.com/aflsquad/statpatch/internal/infrastructure/repository/memory"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

func TestRosterService_SetCaptain_OnFieldPlayer(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	svc := NewRosterService(rosterRepo, logging.NewNop())

	updated, err := svc.SetCaptain(t.Context(), "afl-tdk")
	if err != nil {
		t.Fatalf("set captain failed: %v", err)
	}
	if updated.CaptainID != "afl-tdk" {
		t.Fatalf("unexpected captain: %s", updated.CaptainID)
	}

	persisted, err := rosterRepo.Get(t.Context())
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if persisted.CaptainID != "afl-tdk" {
		t.Fatalf("captain change not persisted: %s", persisted.CaptainID)
	}
}

func TestRosterService_SetCaptain_BenchPlayerRejected(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	svc := NewRosterService(rosterRepo, logging.NewNop())

	_, err := svc.SetCaptain(t.Context(), "afl-kako")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bench captain, got %v", err)
	}

	persisted, err := rosterRepo.Get(t.Context())
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if persisted.CaptainID != "afl-daicos" {
		t.Fatalf("rejected change must not persist: %s", persisted.CaptainID)
	}
}

func TestRosterService_SetCaptain_UnknownPlayer(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	svc := NewRosterService(rosterRepo, logging.NewNop())

	_, err := svc.SetCaptain(t.Context(), "afl-nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_SetCaptain_EmptyID(t *testing.T) {
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())
	svc := NewRosterService(rosterRepo, logging.NewNop())

	_, err := svc.SetCaptain(t.Context(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
