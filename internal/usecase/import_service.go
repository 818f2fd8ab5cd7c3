package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/platform/id"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

// ImportRowIssue records one CSV row that could not be imported.
type ImportRowIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	Total   int              `json:"total"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Issues  []ImportRowIssue `json:"issues,omitempty"`
}

type ImportService struct {
	playerRepo player.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewImportService(playerRepo player.Repository, idGen id.Generator, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

// ImportCSV replaces the canonical player store with a stats-feed export.
// Players already in the store keep their IDs when the feed row carries
// the same name; everyone else gets a fresh opaque ID. Malformed rows are
// skipped and reported, never fatal.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportCSV")
	defer span.End()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportReport{}, fmt.Errorf("%w: read csv header: %v", ErrInvalidInput, err)
	}

	columns, err := mapImportColumns(header)
	if err != nil {
		return ImportReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.playerRepo.List(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("list players: %w", err)
	}
	idByName := make(map[string]string, len(existing))
	for _, rec := range existing {
		idByName[reconcile.Normalize(rec.Name)] = rec.ID
	}

	report := ImportReport{}
	imported := make([]player.Record, 0, len(existing))
	line := 1

	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Total++
			report.Skipped++
			report.Issues = append(report.Issues, ImportRowIssue{Line: line, Reason: err.Error()})
			continue
		}

		report.Total++
		rec, err := columns.parseRow(row)
		if err != nil {
			report.Skipped++
			report.Issues = append(report.Issues, ImportRowIssue{Line: line, Reason: err.Error()})
			s.logger.WarnContext(ctx, "skipping malformed import row", "line", line, "error", err)
			continue
		}

		if existingID, ok := idByName[reconcile.Normalize(rec.Name)]; ok {
			rec.ID = existingID
			report.Updated++
		} else {
			newID, err := s.idGen.NewID()
			if err != nil {
				return ImportReport{}, fmt.Errorf("generate player id: %w", err)
			}
			rec.ID = newID
			report.Created++
		}

		imported = append(imported, rec)
	}

	if len(imported) == 0 {
		return ImportReport{}, fmt.Errorf("%w: no importable rows", ErrInvalidInput)
	}

	if err := s.playerRepo.ReplaceAll(ctx, imported); err != nil {
		return ImportReport{}, fmt.Errorf("replace players: %w", err)
	}

	s.logger.InfoContext(ctx, "import finished",
		"total", report.Total,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
	)

	return report, nil
}

// importColumns maps feed column names onto field indexes. Required
// columns must be present; optional stats default to zero.
type importColumns struct {
	name      int
	team      int
	position  int
	price     int
	breakeven int
	average   int
	last3     int
	last5     int
	games     int
	projected int
	status    int
}

func mapImportColumns(header []string) (importColumns, error) {
	byName := make(map[string]int, len(header))
	for i, col := range header {
		byName[strings.ToLower(strings.TrimSpace(col))] = i
	}

	lookup := func(name string) int {
		if i, ok := byName[name]; ok {
			return i
		}
		return -1
	}

	cols := importColumns{
		name:      lookup("name"),
		team:      lookup("team"),
		position:  lookup("position"),
		price:     lookup("price"),
		breakeven: lookup("breakeven"),
		average:   lookup("avg"),
		last3:     lookup("last3_avg"),
		last5:     lookup("last5_avg"),
		games:     lookup("games"),
		projected: lookup("projected_score"),
		status:    lookup("status"),
	}

	for _, required := range []struct {
		label string
		index int
	}{
		{"name", cols.name},
		{"team", cols.team},
		{"position", cols.position},
		{"price", cols.price},
		{"breakeven", cols.breakeven},
	} {
		if required.index < 0 {
			return importColumns{}, fmt.Errorf("missing required column %q", required.label)
		}
	}

	return cols, nil
}

func (c importColumns) parseRow(row []string) (player.Record, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := field(c.name)
	if name == "" {
		return player.Record{}, fmt.Errorf("name is empty")
	}

	position, err := player.ParsePosition(field(c.position))
	if err != nil {
		return player.Record{}, err
	}

	price, err := strconv.ParseInt(field(c.price), 10, 64)
	if err != nil {
		return player.Record{}, fmt.Errorf("parse price: %w", err)
	}

	breakeven, err := strconv.Atoi(field(c.breakeven))
	if err != nil {
		return player.Record{}, fmt.Errorf("parse breakeven: %w", err)
	}

	rec := player.Record{
		Name:      name,
		Team:      field(c.team),
		Position:  position,
		Price:     price,
		Breakeven: breakeven,
		Status:    player.StatusFit,
	}

	if raw := field(c.average); raw != "" {
		if rec.Average, err = strconv.ParseFloat(raw, 64); err != nil {
			return player.Record{}, fmt.Errorf("parse avg: %w", err)
		}
	}
	if raw := field(c.last3); raw != "" {
		if rec.Last3, err = strconv.ParseFloat(raw, 64); err != nil {
			return player.Record{}, fmt.Errorf("parse last3_avg: %w", err)
		}
	}
	if raw := field(c.last5); raw != "" {
		if rec.Last5, err = strconv.ParseFloat(raw, 64); err != nil {
			return player.Record{}, fmt.Errorf("parse last5_avg: %w", err)
		}
	}
	if raw := field(c.games); raw != "" {
		if rec.Games, err = strconv.Atoi(raw); err != nil {
			return player.Record{}, fmt.Errorf("parse games: %w", err)
		}
	}
	if raw := field(c.projected); raw != "" {
		if rec.Projected, err = strconv.ParseFloat(raw, 64); err != nil {
			return player.Record{}, fmt.Errorf("parse projected_score: %w", err)
		}
	}
	if raw := field(c.status); raw != "" {
		switch player.Status(strings.ToLower(raw)) {
		case player.StatusFit, player.StatusInjured, player.StatusSuspended:
			rec.Status = player.Status(strings.ToLower(raw))
		default:
			return player.Record{}, fmt.Errorf("invalid status %q", raw)
		}
	}

	if err := rec.Validate(); err != nil {
		return player.Record{}, err
	}

	return rec, nil
}
