package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"guessduel/internal/game"
	"guessduel/internal/leaderboard"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	scores := leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.json"), 5)
	h := NewHandler(game.NewSingle(), scores)

	r.GET("/start", h.StartSingle)
	r.GET("/guess", h.GuessSingle)
	r.GET("/save-score", h.SaveScore)
	r.GET("/leaderboard", h.GetLeaderboard)
	return r
}

func do(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSinglePlayerFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "/start?difficulty=hard")
	if w.Code != http.StatusOK || w.Body.String() != "Game started" {
		t.Fatalf("start: code=%d body=%q", w.Code, w.Body.String())
	}

	// 0 and 101 bracket every possible target.
	w = do(t, r, "/guess?number=0")
	if !strings.Contains(w.Body.String(), "too low") {
		t.Fatalf("guess 0: %q", w.Body.String())
	}

	w = do(t, r, "/guess?number=101")
	if !strings.Contains(w.Body.String(), "too high") {
		t.Fatalf("guess 101: %q", w.Body.String())
	}

	// Hard mode allows three chances; the third miss ends the game.
	w = do(t, r, "/guess?number=0")
	if !strings.Contains(w.Body.String(), "Game over") {
		t.Fatalf("final guess: %q", w.Body.String())
	}
}

func TestGuessRejectsNonNumeric(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "/guess?number=banana")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSaveScoreAndLeaderboard(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "/start?difficulty=easy")
	do(t, r, "/guess?number=0")
	do(t, r, "/guess?number=0")

	w := do(t, r, "/save-score?name=alice")
	if w.Code != http.StatusOK {
		t.Fatalf("save-score: code=%d", w.Code)
	}

	var top []leaderboard.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(top) != 1 || top[0].Name != "alice" || top[0].Score != 2 {
		t.Fatalf("top = %+v; want alice with 2 attempts", top)
	}

	w = do(t, r, "/leaderboard")
	if err := json.Unmarshal(w.Body.Bytes(), &top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("leaderboard has %d entries; want 1", len(top))
	}

	w = do(t, r, "/save-score")
	if err := json.Unmarshal(w.Body.Bytes(), &top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("leaderboard has %d entries; want 2", len(top))
	}
	found := false
	for _, e := range top {
		if e.Name == "Anonymous" {
			found = true
		}
	}
	if !found {
		t.Fatal("missing Anonymous fallback entry")
	}
}
