package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SKY_TEST_VALUE", "set")

	if got := GetEnv("SKY_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want %q", got, "set")
	}
	if got := GetEnv("SKY_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-3", -3},
		{"invalid", "abc", 7},
		{"empty", "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SKY_TEST_INT", tt.value)
			if got := GetEnvInt("SKY_TEST_INT", 7); got != tt.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"SSH_PORT", "DATABASE_URL", "CANVAS_WIDTH", "CANVAS_HEIGHT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.SSHPort != "" {
		t.Errorf("SSHPort = %q, want empty (explicitly set)", cfg.SSHPort)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.CanvasWidth != 800 {
		t.Errorf("CanvasWidth = %d, want 800 (fallback)", cfg.CanvasWidth)
	}
	if cfg.CanvasHeight != 600 {
		t.Errorf("CanvasHeight = %d, want 600 (fallback)", cfg.CanvasHeight)
	}
	if cfg.BestScoreFile == "" {
		t.Error("BestScoreFile should have a default")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("DATABASE_URL", "postgres://localhost/sky")
	t.Setenv("CANVAS_WIDTH", "640")
	t.Setenv("METRICS_ADDR", ":9100")

	cfg := Load()

	if cfg.SSHPort != "2323" {
		t.Errorf("SSHPort = %q, want %q", cfg.SSHPort, "2323")
	}
	if cfg.DatabaseURL != "postgres://localhost/sky" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://localhost/sky")
	}
	if cfg.CanvasWidth != 640 {
		t.Errorf("CanvasWidth = %d, want 640", cfg.CanvasWidth)
	}
	if cfg.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9100")
	}
}
