package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/cash-cows", handler.ListCashCows)
	mux.HandleFunc("GET /v1/roster", handler.GetRoster)
	mux.HandleFunc("PUT /v1/roster/captain", handler.SetCaptain)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/reconcile", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcile)))
}
