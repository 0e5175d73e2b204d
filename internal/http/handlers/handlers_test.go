package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-game-service/internal/domain"
	"card-game-service/internal/metrics"
	"card-game-service/internal/stats"
	"card-game-service/internal/testutil"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc, _ := testutil.NewGameService(1)
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(svc, logger, metrics.NewRecorder(), nil)
}

func do(t *testing.T, h *Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestCreateGame(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/gameapi/1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCreateGameDuplicateReturnsBadRequest(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	rec := do(t, h, http.MethodPost, "/gameapi/1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Game 1 already exists" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestDeleteGame(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	rec := do(t, h, http.MethodDelete, "/gameapi/1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, "/gameapi/1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Game 1 not found" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestInvalidGameID(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/gameapi/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddDeck(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	rec := do(t, h, http.MethodPost, "/gameapi/1/deck")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/gameapi/9/deck")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing game, got %d", rec.Code)
	}
}

func TestAddPlayerAllocatesMonotonicIDs(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	for want := 1; want <= 3; want++ {
		rec := do(t, h, http.MethodPost, "/gameapi/1/player")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var player domain.Player
		decodeBody(t, rec, &player)
		if player.ID != want {
			t.Fatalf("expected player id %d, got %d", want, player.ID)
		}
	}
}

func TestPlayerIDsNotReusedAfterRemoval(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/player")

	rec := do(t, h, http.MethodDelete, "/gameapi/1/player/1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/gameapi/1/player")
	var player domain.Player
	decodeBody(t, rec, &player)
	if player.ID != 2 {
		t.Fatalf("expected id 2 after removing player 1, got %d", player.ID)
	}
}

func TestRemoveMissingPlayer(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	rec := do(t, h, http.MethodDelete, "/gameapi/1/player/5")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Player 5 not found" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestGetPlayer(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/player")

	rec := do(t, h, http.MethodGet, "/gameapi/1/player/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var player domain.Player
	decodeBody(t, rec, &player)
	if player.ID != 1 {
		t.Fatalf("expected player 1, got %d", player.ID)
	}
}

func TestDealCards(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/deck")
	do(t, h, http.MethodPost, "/gameapi/1/player")

	rec := do(t, h, http.MethodPost, "/gameapi/1/player/1/deal")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var game domain.Game
	decodeBody(t, rec, &game)
	if game.Shoe == nil || len(game.Shoe.Cards) != domain.DeckSize-1 {
		t.Fatalf("expected shoe of %d cards", domain.DeckSize-1)
	}
	if len(game.Players) != 1 || len(game.Players[0].Hand) != 1 {
		t.Fatalf("expected one dealt card in the player's hand")
	}

	if got := h.metrics.CardsDealt(); got != 1 {
		t.Fatalf("expected 1 card dealt recorded, got %d", got)
	}
}

func TestDealCardsWithoutShoeSucceeds(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/player")

	rec := do(t, h, http.MethodPost, "/gameapi/1/player/1/deal")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for no-op deal, got %d", rec.Code)
	}
	if got := h.metrics.CardsDealt(); got != 0 {
		t.Fatalf("expected no cards dealt recorded, got %d", got)
	}
}

func TestListPlayersSortedByTotalDescending(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/deck")
	do(t, h, http.MethodPost, "/gameapi/1/player")
	do(t, h, http.MethodPost, "/gameapi/1/player")

	// Fresh deck front: A, 2, 3 of hearts. Player 1 takes the ace, player 2
	// takes the 2 and the 3.
	do(t, h, http.MethodPost, "/gameapi/1/player/1/deal")
	do(t, h, http.MethodPost, "/gameapi/1/player/2/deal")
	do(t, h, http.MethodPost, "/gameapi/1/player/2/deal")

	rec := do(t, h, http.MethodGet, "/gameapi/1/players")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []domain.Player
	decodeBody(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 players, got %d", len(list))
	}
	// Player 2 holds 2+3=5, player 1 holds A=1.
	if list[0].ID != 2 || list[0].Total != 5 {
		t.Fatalf("expected player 2 (total 5) first, got player %d (total %d)", list[0].ID, list[0].Total)
	}
	if list[1].ID != 1 || list[1].Total != 1 {
		t.Fatalf("expected player 1 (total 1) last, got player %d (total %d)", list[1].ID, list[1].Total)
	}
}

func TestCardsBySuit(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/deck")

	rec := do(t, h, http.MethodGet, "/gameapi/1/deck")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var counts map[string]int
	decodeBody(t, rec, &counts)
	for _, suit := range []string{"HEARTS", "SPADES", "CLUBS", "DIAMONDS"} {
		if counts[suit] != 13 {
			t.Fatalf("expected 13 %s, got %d", suit, counts[suit])
		}
	}
}

func TestCardsBySuitEmptyShoeOmitsSuits(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	rec := do(t, h, http.MethodGet, "/gameapi/1/deck")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var counts map[string]int
	decodeBody(t, rec, &counts)
	if len(counts) != 0 {
		t.Fatalf("expected empty mapping, got %v", counts)
	}
}

func TestRemainingCards(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/deck")
	do(t, h, http.MethodPost, "/gameapi/1/deck")

	rec := do(t, h, http.MethodGet, "/gameapi/1/deck/cards")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var counts []domain.CardCount
	decodeBody(t, rec, &counts)
	if len(counts) != domain.DeckSize {
		t.Fatalf("expected %d entries, got %d", domain.DeckSize, len(counts))
	}
	for _, cc := range counts {
		if cc.Count != 2 {
			t.Fatalf("expected count 2, got %d for %s", cc.Count, cc.Card)
		}
	}
}

func TestShuffleEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1/deck")

	rec := do(t, h, http.MethodPost, "/gameapi/1/shuffle")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/gameapi/9/shuffle")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/gameapi/1")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/gameapi/1"},
		{http.MethodDelete, "/gameapi/1/deck"},
		{http.MethodGet, "/gameapi/1/player/1/deal"},
		{http.MethodGet, "/gameapi/1/shuffle"},
		{http.MethodDelete, "/gameapi/1/players"},
	}
	for _, tc := range cases {
		rec := do(t, h, tc.method, tc.path)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestUnknownPath(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/gameapi/1/unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	h.Ready(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsReporterStatus(t *testing.T) {
	svc, _ := testutil.NewGameService(1)
	logger, _ := testutil.NewBufferLogger()

	current := stats.Status{}
	h := NewHandler(svc, logger, metrics.NewRecorder(), func() stats.Status { return current })

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	h.Ready(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before reporter start, got %d", rec.Code)
	}

	current = stats.Status{Started: true}
	rec = httptest.NewRecorder()
	h.Ready(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after reporter start, got %d", rec.Code)
	}
}

func TestOperationMetricsRecorded(t *testing.T) {
	h := newTestHandler(t)

	do(t, h, http.MethodPost, "/gameapi/1")
	do(t, h, http.MethodPost, "/gameapi/1")

	if calls := h.metrics.OperationCalls(metrics.OpCreateGame); calls != 2 {
		t.Fatalf("expected 2 create calls recorded, got %d", calls)
	}
	if failures := h.metrics.OperationFailures(metrics.OpCreateGame); failures != 1 {
		t.Fatalf("expected 1 create failure recorded, got %d", failures)
	}
}
