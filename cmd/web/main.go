package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyshooter/internal/config"
	gameconfig "github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/highscore"
	"github.com/tomz197/skyshooter/internal/logging"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, "web", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := highscore.Open(ctx, cfg.DatabaseURL, cfg.BestScoreFile)
	if err != nil {
		logger.Fatal("failed to open best-score store", "err", err)
	}
	defer closeStore()

	addr := net.JoinHostPort(cfg.WebHost, cfg.WebPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(store, cfg.SSHDisplayHost, cfg.SSHPort, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Starting web server", "addr", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

// newMux serves the landing page, the best score as JSON, and a health check.
// The best score is read on every request since the SSH server writes it.
func newMux(store highscore.Store, sshHost, sshPort string, logger *log.Logger) http.Handler {
	best := func(r *http.Request) int {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		n, err := highscore.ReadBest(ctx, store, gameconfig.BestScoreKey)
		if err != nil {
			logger.Warn("reading best score", "err", err)
		}
		return n
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			SSHHost string
			SSHPort string
			Best    int
		}{sshHost, sshPort, best(r)}
		if err := page.Execute(w, data); err != nil {
			logger.Error("rendering page", "err", err)
		}
	})
	mux.HandleFunc("GET /best", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"best": best(r)}); err != nil {
			logger.Error("writing best score", "err", err)
		}
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.Error("writing health check", "err", err)
		}
	})
	return mux
}
