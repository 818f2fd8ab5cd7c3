package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAliasTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.json")
	content := `{"Tom de konning":"Tom De Koning","Sheezal":"Harry Sheezel"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed alias file: %v", err)
	}

	table, err := LoadAliasTable(path)
	if err != nil {
		t.Fatalf("load alias table: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
	if target, ok := table.Canonical("Tom de konning"); !ok || target != "Tom De Koning" {
		t.Fatalf("unexpected alias resolution: %q %v", target, ok)
	}
}

func TestLoadAliasTable_MissingFileIsEmpty(t *testing.T) {
	table, err := LoadAliasTable(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load alias table: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d entries", table.Len())
	}
}

func TestLoadCorrections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.json")
	content := `[{"name":"Tom de konning","price":940000,"breakeven":94}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed corrections file: %v", err)
	}

	corrections, err := LoadCorrections(path)
	if err != nil {
		t.Fatalf("load corrections: %v", err)
	}
	if len(corrections) != 1 {
		t.Fatalf("expected 1 correction, got %d", len(corrections))
	}
	if corrections[0].Price == nil || *corrections[0].Price != 940000 {
		t.Fatalf("price not decoded: %+v", corrections[0])
	}
	if corrections[0].Games != nil {
		t.Fatalf("absent field decoded as present: %+v", corrections[0])
	}
}
