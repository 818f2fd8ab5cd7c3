package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	records, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(records))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	record, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(record))
}

func (h *Handler) ListCashCows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCashCows")
	defer span.End()

	cows, err := h.cashCowService.ListCashCows(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list cash cows failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]cashCowDTO, 0, len(cows))
	for _, cow := range cows {
		items = append(items, cashCowToDTO(cow))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
