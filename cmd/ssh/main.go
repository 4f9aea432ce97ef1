package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	gameconfig "github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/highscore"
	applog "github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/metrics"
	"github.com/tomz197/skyshooter/internal/object"
)

func main() {
	cfg := config.Load()
	logger := applog.New(os.Stderr, "ssh", cfg.LogLevel)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.SSHHost, "port", cfg.SSHPort, "hostKeyPath", cfg.HostKeyPath, "workingDir", workingDir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := highscore.Open(ctx, cfg.DatabaseURL, cfg.BestScoreFile)
	if err != nil {
		cancel()
		logger.Fatal("failed to open best-score store", "err", err)
	}
	defer closeStore()

	best, err := highscore.NewTracker(ctx, store, gameconfig.BestScoreKey)
	cancel()
	if err != nil {
		logger.Warn("loading best score, starting from zero", "err", err)
	}

	collector := metrics.New()
	collector.SetBest(best.Best())

	h := &handler{
		cfg:     cfg,
		logger:  logger,
		best:    best,
		metrics: collector,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "err", err)
			}
		}()
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "host", cfg.SSHHost, "port", cfg.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if metricsServer != nil {
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// handler runs one independent game per SSH session. Sessions share only
// the best-score tracker and the metrics.
type handler struct {
	cfg     config.Config
	logger  *log.Logger
	best    *highscore.Tracker
	metrics *metrics.Collector
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		h.metrics.ConnectionOpened()
		defer h.metrics.ConnectionClosed()

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		c := loop.NewClient(sess, sess, loop.Options{
			TermSizeFunc:   sizeTracker.getSize,
			Best:           h.best,
			Observer:       h.metrics,
			Logger:         logger,
			Screen:         object.Screen{Width: float64(h.cfg.CanvasWidth), Height: float64(h.cfg.CanvasHeight)},
			IdleWarn:       gameconfig.InactivityWarnUser * time.Second,
			IdleDisconnect: gameconfig.InactivityDisconnectUser * time.Second,
		})

		err := c.Run(sess.Context())
		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected due to inactivity.")
		case err != nil:
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
