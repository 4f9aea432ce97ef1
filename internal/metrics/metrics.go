// Package metrics exposes server counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomz197/skyshooter/internal/game"
)

const namespace = "skyshooter"

// Collector counts sessions and game results across all connections.
// It satisfies game.Observer and is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	sessions    prometheus.Counter
	gameOvers   prometheus.Counter
	newBests    prometheus.Counter
	finalScores prometheus.Histogram
	bestScore   prometheus.Gauge
	connections prometheus.Gauge
}

var _ game.Observer = (*Collector)(nil)

// New registers the collectors on a private registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Play sessions started.",
		}),
		gameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Play sessions that ended with no lives left.",
		}),
		newBests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_best_scores_total",
			Help:      "Game-overs that set a new best score.",
		}),
		finalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game-over.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_score",
			Help:      "Best score seen by this server.",
		}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Open SSH sessions.",
		}),
	}
	c.registry.MustRegister(
		c.sessions,
		c.gameOvers,
		c.newBests,
		c.finalScores,
		c.bestScore,
		c.connections,
		collectors.NewGoCollector(),
	)
	return c
}

// SessionStarted counts a new play session.
func (c *Collector) SessionStarted() {
	c.sessions.Inc()
}

// GameOver records a finished session.
func (c *Collector) GameOver(o game.Outcome) {
	c.gameOvers.Inc()
	c.finalScores.Observe(float64(o.Score))
	if o.NewBest {
		c.newBests.Inc()
	}
	c.SetBest(o.Best)
}

// SetBest publishes the current best score.
func (c *Collector) SetBest(best int) {
	c.bestScore.Set(float64(best))
}

// ConnectionOpened tracks a new SSH session.
func (c *Collector) ConnectionOpened() {
	c.connections.Inc()
}

// ConnectionClosed tracks a closed SSH session.
func (c *Collector) ConnectionClosed() {
	c.connections.Dec()
}

// Handler serves the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
