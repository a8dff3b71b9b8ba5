package otel_test

import (
	"context"
	"os"
	"testing"

	"github.com/louisbranch/minesweeper/internal/platform/otel"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	unsetEnv(t, "MINESWEEPER_OTEL_ENDPOINT")
	unsetEnv(t, "MINESWEEPER_OTEL_ENABLED")

	settings, err := otel.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.Endpoint != "" || !settings.Enabled {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  string
	}{
		{name: "noop without endpoint"},
		{name: "noop when disabled", endpoint: "http://localhost:4318", enabled: "false"},
		// Non-routable address so nothing is exported.
		{name: "provider with endpoint", endpoint: "http://192.0.2.1:4318"},
		{name: "provider explicitly enabled", endpoint: "http://192.0.2.1:4318", enabled: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "MINESWEEPER_OTEL_ENDPOINT")
			unsetEnv(t, "MINESWEEPER_OTEL_ENABLED")
			if tt.endpoint != "" {
				t.Setenv("MINESWEEPER_OTEL_ENDPOINT", tt.endpoint)
			}
			if tt.enabled != "" {
				t.Setenv("MINESWEEPER_OTEL_ENABLED", tt.enabled)
			}

			shutdown, err := otel.Setup(context.Background(), "minesweeper-test")
			if err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown: %v", err)
			}
		})
	}
}

func TestSetupRejectsInvalidEnabled(t *testing.T) {
	t.Setenv("MINESWEEPER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("MINESWEEPER_OTEL_ENABLED", "sometimes")

	shutdown, err := otel.Setup(context.Background(), "minesweeper-test")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupNoopShutdownIgnoresCancelledContext(t *testing.T) {
	unsetEnv(t, "MINESWEEPER_OTEL_ENDPOINT")

	shutdown, err := otel.Setup(context.Background(), "minesweeper-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
