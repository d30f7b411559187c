package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/mockmaster/internal/platform/id"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/usecase"
)

const testAPIKey = "test-key"

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func (e envelope) reason() string {
	if e.Error == nil || len(e.Error.Errors) == 0 {
		return ""
	}
	return e.Error.Errors[0].Reason
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewDraftStore()
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	logger := logging.NewNop()
	inOrder := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	handler := NewHandler(
		usecase.NewDraftService(store, idgen.NewUUIDGenerator(), inOrder, logger),
		usecase.NewPickService(store, players, logger),
		usecase.NewTeamService(store, logger),
		usecase.NewPlayerService(players),
		logger,
	)
	return NewRouter(handler, RouterConfig{
		ServiceName:        "mockmaster-test",
		APIKey:             testAPIKey,
		SwaggerEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
	}, logger)
}

func call(t *testing.T, router http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %s %s response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, out
}

func TestDraftFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	status, created := call(t, router, http.MethodPost, "/v1/drafts", map[string]any{
		"name":         "Office League Mock",
		"scoring_type": "PPR",
		"team_count":   2,
		"roster_size":  8,
		"team_name":    "Commish",
		"user_name":    "alex",
	})
	if status != http.StatusCreated {
		t.Fatalf("create draft: expected 201, got %d (%s)", status, created.reason())
	}
	draftObj := created.Data["draft"].(map[string]any)
	draftID := draftObj["id"].(string)
	creatorID := created.Data["creatorTeam"].(map[string]any)["id"].(string)
	if got := draftObj["status"]; got != "pending" {
		t.Fatalf("expected pending draft, got %v", got)
	}
	if reqs := draftObj["requirements"].([]any); len(reqs) != 4 {
		t.Fatalf("expected 4 position requirements, got %d", len(reqs))
	}

	status, joined := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/teams", map[string]any{
		"team_name": "Rivals",
		"user_name": "sam",
	})
	if status != http.StatusCreated {
		t.Fatalf("join draft: expected 201, got %d (%s)", status, joined.reason())
	}
	rivalID := joined.Data["id"].(string)

	status, full := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/teams", map[string]any{
		"team_name": "Latecomers",
		"user_name": "kim",
	})
	if status != http.StatusConflict || full.reason() != "draftFull" {
		t.Fatalf("expected 409 draftFull, got %d %q", status, full.reason())
	}

	if status, started := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/start", nil); status != http.StatusOK || started.Data["status"] != "active" {
		t.Fatalf("start draft: got %d %v", status, started.Data)
	}

	status, turn := call(t, router, http.MethodGet, "/v1/drafts/"+draftID+"/turn", nil)
	if status != http.StatusOK {
		t.Fatalf("turn: expected 200, got %d", status)
	}
	if turn.Data["teamId"] != creatorID || turn.Data["overallPick"] != float64(1) {
		t.Fatalf("expected creator on the clock for pick 1, got %v", turn.Data)
	}

	status, pick := call(t, router, http.MethodPost, "/v1/players/nfl-qb-01/draft", map[string]any{"team_id": creatorID})
	if status != http.StatusCreated || pick.Data["whenSelected"] != float64(1) {
		t.Fatalf("first pick: got %d %v (%s)", status, pick.Data, pick.reason())
	}

	status, rejected := call(t, router, http.MethodPost, "/v1/players/nfl-rb-01/draft", map[string]any{"team_id": creatorID})
	if status != http.StatusConflict || rejected.reason() != "notYourTurn" {
		t.Fatalf("expected 409 notYourTurn, got %d %q", status, rejected.reason())
	}

	status, taken := call(t, router, http.MethodPost, "/v1/players/nfl-qb-01/draft", map[string]any{"team_id": rivalID})
	if status != http.StatusConflict || taken.reason() != "playerUnavailable" {
		t.Fatalf("expected 409 playerUnavailable, got %d %q", status, taken.reason())
	}

	if status, _ := call(t, router, http.MethodPost, "/v1/players/nfl-rb-01/draft", map[string]any{"team_id": rivalID}); status != http.StatusCreated {
		t.Fatalf("rival pick: expected 201, got %d", status)
	}

	status, roster := call(t, router, http.MethodGet, "/v1/teams/"+rivalID, nil)
	if status != http.StatusOK {
		t.Fatalf("get team: expected 200, got %d", status)
	}
	selections := roster.Data["selections"].([]any)
	if len(selections) != 1 || selections[0].(map[string]any)["playerId"] != "nfl-rb-01" {
		t.Fatalf("unexpected rival selections: %v", selections)
	}

	if status, paused := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/pause", nil); status != http.StatusOK || paused.Data["status"] != "paused" {
		t.Fatalf("pause draft: got %d %v", status, paused.Data)
	}
	status, onPause := call(t, router, http.MethodPost, "/v1/players/nfl-wr-01/draft", map[string]any{"team_id": rivalID})
	if status != http.StatusConflict || onPause.reason() != "draftNotActive" {
		t.Fatalf("expected 409 draftNotActive while paused, got %d %q", status, onPause.reason())
	}
	if status, _ := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/resume", nil); status != http.StatusOK {
		t.Fatalf("resume draft: expected 200, got %d", status)
	}

	status, details := call(t, router, http.MethodGet, "/v1/drafts/"+draftID, nil)
	if status != http.StatusOK {
		t.Fatalf("get draft: expected 200, got %d", status)
	}
	if details.Data["picksMade"] != float64(2) || details.Data["totalPicks"] != float64(16) {
		t.Fatalf("unexpected draft details: %v", details.Data)
	}

	if status, ended := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/end", nil); status != http.StatusOK || ended.Data["status"] != "ended" {
		t.Fatalf("end draft: got %d %v", status, ended.Data)
	}
	status, again := call(t, router, http.MethodPost, "/v1/drafts/"+draftID+"/end", nil)
	if status != http.StatusConflict || again.reason() != "draftAlreadyEnded" {
		t.Fatalf("expected 409 draftAlreadyEnded, got %d %q", status, again.reason())
	}
}

func TestListEndpointsReturnArrays(t *testing.T) {
	router := newTestRouter(t)

	_, created := call(t, router, http.MethodPost, "/v1/drafts", map[string]any{
		"name":         "Seats",
		"scoring_type": "Standard",
		"team_count":   3,
		"roster_size":  10,
	})
	draftID := created.Data["draft"].(map[string]any)["id"].(string)

	for _, path := range []string{
		"/v1/drafts/" + draftID + "/picks",
		"/v1/drafts/" + draftID + "/seats",
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(apiKeyHeader, testAPIKey)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		var body map[string]any
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: unmarshal: %v", path, err)
		}
		if items, ok := body["data"].([]any); !ok || len(items) != 0 {
			t.Fatalf("%s: expected empty array, got %v", path, body["data"])
		}
	}

	status, turn := call(t, router, http.MethodGet, "/v1/drafts/"+draftID+"/turn", nil)
	if status != http.StatusConflict || turn.reason() != "draftNotActive" {
		t.Fatalf("expected 409 draftNotActive for pending turn, got %d %q", status, turn.reason())
	}
}

func TestHandlerErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantReason string
	}{
		{
			name:       "malformed draft id",
			method:     http.MethodGet,
			path:       "/v1/drafts/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "unknown draft",
			method:     http.MethodGet,
			path:       "/v1/drafts/6f1c2b8e-3d4a-4e5f-9a6b-7c8d9e0f1a2b",
			wantStatus: http.StatusNotFound,
			wantReason: "draftNotFound",
		},
		{
			name:       "unknown team",
			method:     http.MethodGet,
			path:       "/v1/teams/6f1c2b8e-3d4a-4e5f-9a6b-7c8d9e0f1a2b",
			wantStatus: http.StatusNotFound,
			wantReason: "teamNotFound",
		},
		{
			name:       "unknown player",
			method:     http.MethodGet,
			path:       "/v1/players/nfl-k-01",
			wantStatus: http.StatusNotFound,
			wantReason: "playerNotFound",
		},
		{
			name:       "unsupported roster size",
			method:     http.MethodPost,
			path:       "/v1/drafts",
			body:       map[string]any{"name": "Huge", "scoring_type": "PPR", "team_count": 4, "roster_size": 21},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "unknown scoring type",
			method:     http.MethodPost,
			path:       "/v1/drafts",
			body:       map[string]any{"name": "Half", "scoring_type": "HalfPPR", "team_count": 4, "roster_size": 10},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "unknown field",
			method:     http.MethodPost,
			path:       "/v1/drafts",
			body:       map[string]any{"name": "Extra", "scoring_type": "PPR", "team_count": 4, "roster_size": 10, "pick_clock": 90},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "pick without team",
			method:     http.MethodPost,
			path:       "/v1/players/nfl-qb-01/draft",
			body:       map[string]any{},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "pick for unknown team",
			method:     http.MethodPost,
			path:       "/v1/players/nfl-qb-01/draft",
			body:       map[string]any{"team_id": "6f1c2b8e-3d4a-4e5f-9a6b-7c8d9e0f1a2b"},
			wantStatus: http.StatusNotFound,
			wantReason: "teamNotFound",
		},
		{
			name:       "list players without position",
			method:     http.MethodGet,
			path:       "/v1/players",
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, router, tt.method, tt.path, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, status)
			}
			if got := body.reason(); got != tt.wantReason {
				t.Fatalf("expected reason %q, got %q", tt.wantReason, got)
			}
		})
	}
}

func TestPlayerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	status, got := call(t, router, http.MethodGet, "/v1/players/nfl-te-01", nil)
	if status != http.StatusOK {
		t.Fatalf("get player: expected 200, got %d", status)
	}
	if got.Data["position"] != "TE" || got.Data["pprPoints"] == nil {
		t.Fatalf("unexpected player: %v", got.Data)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/players?position=wr", nil)
	req.Header.Set(apiKeyHeader, testAPIKey)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list players: expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []playerDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal players: %v", err)
	}
	if len(body.Data) == 0 {
		t.Fatalf("expected wide receivers in the seed pool")
	}
	for i := 1; i < len(body.Data); i++ {
		if body.Data[i].StandardPoints > body.Data[i-1].StandardPoints {
			t.Fatalf("players not sorted by points at %d: %v > %v", i, body.Data[i].StandardPoints, body.Data[i-1].StandardPoints)
		}
	}
}

func TestRenameTeamOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	_, created := call(t, router, http.MethodPost, "/v1/drafts", map[string]any{
		"name":         "Rename",
		"scoring_type": "PPR",
		"team_count":   2,
		"roster_size":  10,
		"team_name":    "Old Name",
		"user_name":    "jo",
	})
	teamID := created.Data["creatorTeam"].(map[string]any)["id"].(string)

	status, renamed := call(t, router, http.MethodPut, "/v1/teams/"+teamID, map[string]any{"name": "New Name"})
	if status != http.StatusOK || renamed.Data["name"] != "New Name" {
		t.Fatalf("rename: got %d %v", status, renamed.Data)
	}

	status, tooShort := call(t, router, http.MethodPut, "/v1/teams/"+teamID, map[string]any{"name": "No"})
	if status != http.StatusBadRequest || tooShort.reason() != "invalidInput" {
		t.Fatalf("expected 400 for short name, got %d %q", status, tooShort.reason())
	}
}

func TestSwaggerRoutes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/openapi.yaml", "/docs"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Body.Len() == 0 {
			t.Fatalf("%s: expected a body", path)
		}
	}
}
