package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	mux.Handle("POST /v1/drafts", RequireAPIKey(apiKey, http.HandlerFunc(handler.CreateDraft)))
	mux.Handle("GET /v1/drafts/{draftID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/teams", RequireAPIKey(apiKey, http.HandlerFunc(handler.JoinDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/start", RequireAPIKey(apiKey, http.HandlerFunc(handler.StartDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/pause", RequireAPIKey(apiKey, http.HandlerFunc(handler.PauseDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/resume", RequireAPIKey(apiKey, http.HandlerFunc(handler.ResumeDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/end", RequireAPIKey(apiKey, http.HandlerFunc(handler.EndDraft)))
	mux.Handle("GET /v1/drafts/{draftID}/turn", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetCurrentTurn)))
	mux.Handle("GET /v1/drafts/{draftID}/picks", RequireAPIKey(apiKey, http.HandlerFunc(handler.ListPicks)))
	mux.Handle("GET /v1/drafts/{draftID}/seats", RequireAPIKey(apiKey, http.HandlerFunc(handler.ListSeats)))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	mux.Handle("GET /v1/players", RequireAPIKey(apiKey, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /v1/players/{playerID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetPlayer)))
	// Drafting is addressed by player, mirroring how the pick is made in the room.
	mux.Handle("POST /v1/players/{playerID}/draft", RequireAPIKey(apiKey, http.HandlerFunc(handler.AttemptPick)))
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, apiKey string) {
	mux.Handle("GET /v1/teams/{teamID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAPIKey(apiKey, http.HandlerFunc(handler.RenameTeam)))
}
