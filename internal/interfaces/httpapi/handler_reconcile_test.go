package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/infrastructure/repository/memory"
	"github.com/aflsquad/statpatch/internal/platform/logging"
	"github.com/aflsquad/statpatch/internal/usecase"
)

const testInternalToken = "test-internal-token"

func newTestRouter(t *testing.T) (http.Handler, *memory.PlayerRepository) {
	t.Helper()

	table, err := reconcile.NewAliasTable(nil)
	if err != nil {
		t.Fatalf("build alias table: %v", err)
	}

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository(memory.SeedRoster())

	playerService := usecase.NewPlayerService(playerRepo, nil)
	rosterService := usecase.NewRosterService(rosterRepo, logging.NewNop())
	cashCowService := usecase.NewCashCowService(playerService, 300000)
	reconcileService := usecase.NewReconcileService(playerRepo, rosterRepo, reconcile.NewMatcher(table), nil, logging.NewNop())

	handler := NewHandler(playerService, rosterService, cashCowService, reconcileService, logging.NewNop())

	return NewRouter(handler, logging.NewNop(), nil, testInternalToken), playerRepo
}

func TestRunReconcile_RequiresInternalToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/reconcile", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}
}

func TestRunReconcile_AppliesCorrections(t *testing.T) {
	router, playerRepo := newTestRouter(t)

	payload := `{"target":"players","dry_run":false,"corrections":[{"name":"Nick Daicos","price":1080000}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/reconcile", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", testInternalToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data usecase.ReconcileReport `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.Matched != 1 || body.Data.DryRun {
		t.Fatalf("unexpected report: %+v", body.Data)
	}

	updated, _, err := playerRepo.GetByID(req.Context(), "afl-daicos")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if updated.Price != 1080000 {
		t.Fatalf("correction not applied: price=%d", updated.Price)
	}
}

func TestRunReconcile_RejectsUnknownTarget(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{"target":"fixtures","corrections":[{"name":"Nick Daicos"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/reconcile", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", testInternalToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestSetCaptain_BenchPlayerRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/roster/captain", strings.NewReader(`{"player_id":"afl-kako"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bench captain, got %d", rec.Code)
	}
}

func TestListCashCows_ReturnsRookieRisers(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cash-cows", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Data []cashCowDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Data) == 0 {
		t.Fatal("expected at least one cash cow from the seed fixture")
	}
	for _, cow := range body.Data {
		if cow.Margin <= 0 {
			t.Fatalf("non-riser leaked into cash cows: %+v", cow)
		}
	}
}
