package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

func TestPlayerStore_RoundTripWritesLegacyAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	store := NewPlayerStore(path, logging.NewNop())

	records := []player.Record{
		{
			ID:        "p-1",
			Name:      "Tom De Koning",
			Team:      "Carlton",
			Position:  player.PositionRuck,
			Price:     900000,
			Breakeven: 90,
			Average:   92.5,
		},
	}
	if err := store.ReplaceAll(t.Context(), records); err != nil {
		t.Fatalf("replace all failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	for _, key := range []string{`"breakeven"`, `"breakEven"`, `"avg"`, `"averagePoints"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("store file missing legacy alias key %s:\n%s", key, raw)
		}
	}

	loaded, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(loaded))
	}
	if loaded[0].Breakeven != 90 || loaded[0].Average != 92.5 {
		t.Fatalf("round trip lost fields: %+v", loaded[0])
	}
}

func TestPlayerStore_AcceptsLegacyKeySpellings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	legacy := `[{"name":"Harry Sheezel","team":"North Melbourne","position":"DEF",` +
		`"price":800000,"breakEven":75,"averagePoints":88.1}]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed store file: %v", err)
	}

	store := NewPlayerStore(path, logging.NewNop())
	records, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Breakeven != 75 {
		t.Fatalf("legacy breakEven not read: %+v", records[0])
	}
	if records[0].Average != 88.1 {
		t.Fatalf("legacy averagePoints not read: %+v", records[0])
	}
}

func TestPlayerStore_SkipsMalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	mixed := `[{"name":"Good Player","position":"MID","price":1},` +
		`{"name":123,"position":false},` +
		`{"name":"Another Player","position":"FWD","price":2}]`
	if err := os.WriteFile(path, []byte(mixed), 0o644); err != nil {
		t.Fatalf("seed store file: %v", err)
	}

	store := NewPlayerStore(path, logging.NewNop())
	records, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected bad row skipped, got %d records", len(records))
	}
}

func TestPlayerStore_BackupPrecedesWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player_data.json")
	original := `[{"name":"Tom De Koning","position":"RUC","price":900000,"breakeven":90}]`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("seed store file: %v", err)
	}

	store := NewPlayerStore(path, logging.NewNop())
	records, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	records[0].Price = 940000
	if err := store.ReplaceAll(t.Context(), records); err != nil {
		t.Fatalf("replace all failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var backupName string
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".backup-") {
			backupName = entry.Name()
		}
	}
	if backupName == "" {
		t.Fatalf("no backup file written, dir has %d entries", len(entries))
	}

	backupContent, err := os.ReadFile(filepath.Join(dir, backupName))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backupContent) != original {
		t.Fatalf("backup does not match pre-run content:\n%s", backupContent)
	}

	updated, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list after write failed: %v", err)
	}
	if updated[0].Price != 940000 {
		t.Fatalf("primary store missing merged value: %+v", updated[0])
	}
}

func TestPlayerStore_MissingFileListsEmpty(t *testing.T) {
	store := NewPlayerStore(filepath.Join(t.TempDir(), "absent.json"), logging.NewNop())
	records, err := store.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %d records", len(records))
	}
}
