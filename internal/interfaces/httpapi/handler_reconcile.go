package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/usecase"
)

const (
	reconcileTargetPlayers = "players"
	reconcileTargetRoster  = "roster"
)

type reconcileRequest struct {
	Target      string                 `json:"target" validate:"required,oneof=players roster"`
	DryRun      bool                   `json:"dry_run"`
	Corrections []reconcile.Correction `json:"corrections" validate:"required,min=1,dive"`
}

// RunReconcile applies a correction batch to the configured target store.
// It sits behind the internal job token because a committed run rewrites
// the canonical data files.
func (h *Handler) RunReconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcile")
	defer span.End()

	var req reconcileRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var (
		report usecase.ReconcileReport
		err    error
	)
	switch req.Target {
	case reconcileTargetRoster:
		report, err = h.reconcileService.ApplyToRoster(ctx, req.Corrections, req.DryRun)
	default:
		report, err = h.reconcileService.ApplyToPlayers(ctx, req.Corrections, req.DryRun)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile failed", "target", req.Target, "dry_run", req.DryRun, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
