package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/infrastructure/repository/memory"
	"github.com/aflsquad/statpatch/internal/platform/id"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

const importFeedCSV = `name,team,position,price,breakeven,avg,games,status
Nick Daicos,Collingwood,MID,1080000,121,114.2,13,fit
Sam Newey,Adelaide,DEF,198000,-12,44.0,2,fit
`

func TestImportService_ImportCSV_KeepsExistingIDs(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewImportService(playerRepo, id.NewRandomGenerator(), logging.NewNop())

	report, err := svc.ImportCSV(t.Context(), strings.NewReader(importFeedCSV))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if report.Total != 2 || report.Updated != 1 || report.Created != 1 || report.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	records, err := playerRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("import must replace the store, got %d records", len(records))
	}

	byName := make(map[string]player.Record, len(records))
	for _, rec := range records {
		byName[rec.Name] = rec
	}

	daicos, ok := byName["Nick Daicos"]
	if !ok {
		t.Fatal("updated player missing after import")
	}
	if daicos.ID != "afl-daicos" {
		t.Fatalf("existing player lost its id: %s", daicos.ID)
	}
	if daicos.Price != 1080000 || daicos.Games != 13 {
		t.Fatalf("feed values not applied: %+v", daicos)
	}

	newey, ok := byName["Sam Newey"]
	if !ok {
		t.Fatal("created player missing after import")
	}
	if newey.ID == "" || newey.ID == "afl-daicos" {
		t.Fatalf("created player has bad id: %q", newey.ID)
	}
}

func TestImportService_ImportCSV_SkipsMalformedRows(t *testing.T) {
	feed := `name,team,position,price,breakeven
Nick Daicos,Collingwood,MID,1080000,121
,Adelaide,DEF,198000,-12
Broken Price,Carlton,FWD,not-a-number,10
Bad Position,Sydney,XYZ,400000,30
`
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewImportService(playerRepo, id.NewRandomGenerator(), logging.NewNop())

	report, err := svc.ImportCSV(t.Context(), strings.NewReader(feed))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if report.Total != 4 || report.Created != 1 || report.Skipped != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Issues) != 3 {
		t.Fatalf("expected one issue per skipped row, got %d", len(report.Issues))
	}
	for _, issue := range report.Issues {
		if issue.Line < 2 {
			t.Fatalf("issue line must point at a data row: %+v", issue)
		}
	}
}

func TestImportService_ImportCSV_RejectsMissingColumns(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewImportService(playerRepo, id.NewRandomGenerator(), logging.NewNop())

	_, err := svc.ImportCSV(t.Context(), strings.NewReader("name,team\nNick Daicos,Collingwood\n"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestImportService_ImportCSV_RejectsEmptyFeed(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewImportService(playerRepo, id.NewRandomGenerator(), logging.NewNop())

	_, err := svc.ImportCSV(t.Context(), strings.NewReader("name,team,position,price,breakeven\n"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	records, listErr := playerRepo.List(t.Context())
	if listErr != nil {
		t.Fatalf("list players: %v", listErr)
	}
	if len(records) == 0 {
		t.Fatal("empty feed must not wipe the store")
	}
}
