package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomz197/skyshooter/internal/game"
)

func TestCollector_GameOver(t *testing.T) {
	c := New()
	c.SessionStarted()
	c.SessionStarted()
	c.GameOver(game.Outcome{Score: 40, Best: 40, NewBest: true})
	c.GameOver(game.Outcome{Score: 15, Best: 40})

	if got := testutil.ToFloat64(c.sessions); got != 2 {
		t.Errorf("sessions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.gameOvers); got != 2 {
		t.Errorf("game overs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.newBests); got != 1 {
		t.Errorf("new bests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.bestScore); got != 40 {
		t.Errorf("best score = %v, want 40", got)
	}
}

func TestCollector_Connections(t *testing.T) {
	c := New()
	c.ConnectionOpened()
	c.ConnectionOpened()
	c.ConnectionClosed()

	if got := testutil.ToFloat64(c.connections); got != 1 {
		t.Errorf("connections = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.SessionStarted()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "skyshooter_sessions_started_total 1") {
		t.Errorf("metrics output missing session counter:\n%s", body)
	}
}
