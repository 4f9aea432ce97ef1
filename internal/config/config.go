package config

import (
	"os"
	"path/filepath"
)

// Config holds process-level settings shared by the binaries.
type Config struct {
	LogLevel string
	LogFile  string // Terminal frontend only; it owns stdout

	// Best-score persistence. DatabaseURL wins over BestScoreFile when set.
	DatabaseURL   string
	BestScoreFile string

	SSHHost     string
	SSHPort     string
	HostKeyPath string
	MetricsAddr string

	WebHost        string
	WebPort        string
	SSHDisplayHost string

	CanvasWidth  int
	CanvasHeight int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFile:        GetEnv("LOG_FILE", ""),
		DatabaseURL:    GetEnv("DATABASE_URL", ""),
		BestScoreFile:  GetEnv("BEST_SCORE_FILE", defaultBestScoreFile()),
		SSHHost:        GetEnv("SSH_HOST", "::"),
		SSHPort:        GetEnv("SSH_PORT", "2222"),
		HostKeyPath:    GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),
		MetricsAddr:    GetEnv("METRICS_ADDR", ""),
		WebHost:        GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort:        GetEnv("WEB_PORT", "8080"),
		SSHDisplayHost: GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		CanvasWidth:    GetEnvInt("CANVAS_WIDTH", 800),
		CanvasHeight:   GetEnvInt("CANVAS_HEIGHT", 600),
	}
}

func defaultBestScoreFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skyshooter.json"
	}
	return filepath.Join(home, ".skyshooter.json")
}
