package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/domain/roster"
	"github.com/aflsquad/statpatch/internal/platform/cache"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

const (
	reconcileTargetPlayers = "players"
	reconcileTargetRoster  = "roster"

	defaultVerifyWorkers = 4
)

// ReconcileReport aggregates per-correction outcomes for one batch so
// callers can inspect exactly what was (or would be) changed.
type ReconcileReport struct {
	Target         string              `json:"target"`
	Label          string              `json:"label,omitempty"`
	DryRun         bool                `json:"dry_run"`
	Total          int                 `json:"total"`
	Matched        int                 `json:"matched"`
	Unmatched      int                 `json:"unmatched"`
	Ambiguous      int                 `json:"ambiguous"`
	AliasConflicts int                 `json:"alias_conflicts"`
	DurationMs     int64               `json:"duration_ms"`
	Outcomes       []reconcile.Outcome `json:"outcomes"`
}

// Clean reports whether every correction in the batch resolved to a
// player.
func (r ReconcileReport) Clean() bool {
	return r.Matched == r.Total
}

// CorrectionBatch is one named set of corrections, typically a single
// corrections file.
type CorrectionBatch struct {
	Label       string
	Corrections []reconcile.Correction
}

type VerifyInput struct {
	Batches    []CorrectionBatch
	MaxWorkers int
}

type VerifyResult struct {
	BatchCount   int               `json:"batch_count"`
	WorkerCount  int               `json:"worker_count"`
	CleanCount   int               `json:"clean_count"`
	FlaggedCount int               `json:"flagged_count"`
	Reports      []ReconcileReport `json:"reports"`
}

type ReconcileService struct {
	playerRepo player.Repository
	rosterRepo roster.Repository
	matcher    *reconcile.Matcher
	cache      *cache.Store
	logger     *logging.Logger
}

// NewReconcileService wires the matching cascade against both stores.
// cacheStore may be nil; when present its player listing is invalidated
// after every committed apply.
func NewReconcileService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	matcher *reconcile.Matcher,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReconcileService{
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		matcher:    matcher,
		cache:      cacheStore,
		logger:     logger,
	}
}

// ApplyToPlayers runs a correction batch against the canonical player
// store. Corrections are applied strictly in input order, and later
// corrections match against the already-patched records. A failed match
// never aborts the batch; it is reported and the correction skipped.
func (s *ReconcileService) ApplyToPlayers(ctx context.Context, corrections []reconcile.Correction, dryRun bool) (ReconcileReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.ApplyToPlayers")
	defer span.End()

	if len(corrections) == 0 {
		return ReconcileReport{}, fmt.Errorf("%w: at least one correction is required", ErrInvalidInput)
	}

	records, err := s.playerRepo.List(ctx)
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("list players: %w", err)
	}

	start := time.Now()
	patched, report := s.patchRecords(records, corrections)
	report.Target = reconcileTargetPlayers
	report.DryRun = dryRun
	report.DurationMs = time.Since(start).Milliseconds()

	if !dryRun && report.Matched > 0 {
		if err := s.playerRepo.ReplaceAll(ctx, patched); err != nil {
			return ReconcileReport{}, fmt.Errorf("replace players: %w", err)
		}
		s.invalidate(ctx)
	}

	s.logger.InfoContext(ctx, "player reconcile finished",
		"dry_run", dryRun,
		"total", report.Total,
		"matched", report.Matched,
		"unmatched", report.Unmatched,
		"ambiguous", report.Ambiguous,
		"alias_conflicts", report.AliasConflicts,
	)

	return report, nil
}

// ApplyToRoster runs a correction batch against the user roster. Matched
// records are patched in whichever bucket currently holds them, so
// on-field/bench placement and the captain flag survive untouched.
func (s *ReconcileService) ApplyToRoster(ctx context.Context, corrections []reconcile.Correction, dryRun bool) (ReconcileReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.ApplyToRoster")
	defer span.End()

	if len(corrections) == 0 {
		return ReconcileReport{}, fmt.Errorf("%w: at least one correction is required", ErrInvalidInput)
	}

	current, err := s.rosterRepo.Get(ctx)
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("get roster: %w", err)
	}

	start := time.Now()
	report := ReconcileReport{
		Target:   reconcileTargetRoster,
		DryRun:   dryRun,
		Total:    len(corrections),
		Outcomes: make([]reconcile.Outcome, 0, len(corrections)),
	}

	for _, c := range corrections {
		matched, err := s.matcher.Match(c.Name, current.All())
		if err != nil {
			report.Outcomes = append(report.Outcomes, failedOutcome(c.Name, err))
			report.count(reconcile.ClassifyMatchError(err))
			continue
		}

		merged := reconcile.Merge(matched, c)
		if !current.Replace(merged) {
			// All() just produced this record, so a miss here means the
			// roster was mutated concurrently.
			return ReconcileReport{}, fmt.Errorf("replace roster record %q: record vanished", matched.Name)
		}
		report.Outcomes = append(report.Outcomes, matchedOutcome(c.Name, merged))
		report.Matched++
	}
	report.DurationMs = time.Since(start).Milliseconds()

	if !dryRun && report.Matched > 0 {
		if err := s.rosterRepo.Save(ctx, current); err != nil {
			return ReconcileReport{}, fmt.Errorf("save roster: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "roster reconcile finished",
		"dry_run", dryRun,
		"total", report.Total,
		"matched", report.Matched,
		"unmatched", report.Unmatched,
		"ambiguous", report.Ambiguous,
		"alias_conflicts", report.AliasConflicts,
	)

	return report, nil
}

// Verify dry-runs many correction batches concurrently against a single
// snapshot of the player store. It never writes, so batches are safe to
// fan out.
func (s *ReconcileService) Verify(ctx context.Context, input VerifyInput) (VerifyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Verify")
	defer span.End()

	if len(input.Batches) == 0 {
		return VerifyResult{}, fmt.Errorf("%w: at least one batch is required", ErrInvalidInput)
	}

	records, err := s.playerRepo.List(ctx)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("list players: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultVerifyWorkers
	}
	if workerCount > len(input.Batches) {
		workerCount = len(input.Batches)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	reports := make([]ReconcileReport, len(input.Batches))
	var cleanCount atomic.Int64

	var workers sync.WaitGroup
	for i, batch := range input.Batches {
		i, batch := i, batch
		workers.Add(1)
		task := func() {
			defer workers.Done()

			start := time.Now()
			_, report := s.patchRecords(records, batch.Corrections)
			report.Target = reconcileTargetPlayers
			report.Label = batch.Label
			report.DryRun = true
			report.DurationMs = time.Since(start).Milliseconds()
			if report.Clean() {
				cleanCount.Add(1)
			}
			reports[i] = report
		}
		if err := pool.Submit(task); err != nil {
			// Pool refused the task; run it inline rather than dropping
			// the batch.
			task()
		}
	}
	workers.Wait()

	result := VerifyResult{
		BatchCount:   len(input.Batches),
		WorkerCount:  workerCount,
		CleanCount:   int(cleanCount.Load()),
		FlaggedCount: len(input.Batches) - int(cleanCount.Load()),
		Reports:      reports,
	}

	s.logger.InfoContext(ctx, "verify finished",
		"batches", result.BatchCount,
		"workers", result.WorkerCount,
		"clean", result.CleanCount,
		"flagged", result.FlaggedCount,
	)

	return result, nil
}

// patchRecords applies corrections sequentially to a copy of records.
// The input slice is never mutated.
func (s *ReconcileService) patchRecords(records []player.Record, corrections []reconcile.Correction) ([]player.Record, ReconcileReport) {
	patched := make([]player.Record, len(records))
	copy(patched, records)

	report := ReconcileReport{
		Total:    len(corrections),
		Outcomes: make([]reconcile.Outcome, 0, len(corrections)),
	}

	for _, c := range corrections {
		matched, err := s.matcher.Match(c.Name, patched)
		if err != nil {
			report.Outcomes = append(report.Outcomes, failedOutcome(c.Name, err))
			report.count(reconcile.ClassifyMatchError(err))
			continue
		}

		i := indexOfRecord(patched, matched)
		patched[i] = reconcile.Merge(patched[i], c)
		report.Outcomes = append(report.Outcomes, matchedOutcome(c.Name, patched[i]))
		report.Matched++
	}

	return patched, report
}

// indexOfRecord locates the matched record in the working slice.
// Legacy store files carry no IDs, so the lookup cannot go through an
// ID map; record identity falls back to name when IDs are absent.
func indexOfRecord(records []player.Record, matched player.Record) int {
	for i := range records {
		if player.SameIdentity(records[i], matched) {
			return i
		}
	}

	return -1
}

func (r *ReconcileReport) count(status reconcile.OutcomeStatus) {
	switch status {
	case reconcile.OutcomeAliasConflict:
		r.AliasConflicts++
	case reconcile.OutcomeAmbiguous:
		r.Ambiguous++
	default:
		r.Unmatched++
	}
}

func (s *ReconcileService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, playerListCacheKey)
}

func matchedOutcome(query string, merged player.Record) reconcile.Outcome {
	return reconcile.Outcome{
		Query:       query,
		Status:      reconcile.OutcomeMatched,
		MatchedID:   merged.ID,
		MatchedName: merged.Name,
	}
}

func failedOutcome(query string, err error) reconcile.Outcome {
	return reconcile.Outcome{
		Query:  query,
		Status: reconcile.ClassifyMatchError(err),
		Detail: err.Error(),
	}
}
