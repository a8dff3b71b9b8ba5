package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
)

type testConfig struct {
	Difficulty string `env:"CMD_TEST_DIFFICULTY" envDefault:"easy"`
	Locale     string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_DIFFICULTY", "medium")
	t.Setenv("CMD_TEST_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Difficulty, "difficulty", cfgRef.Difficulty, "difficulty")
	fs.StringVar(&cfgRef.Locale, "locale", cfgRef.Locale, "locale")

	if err := ParseArgs(fs, []string{"-difficulty", "hard"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Difficulty != "hard" {
		t.Fatalf("expected flag value for difficulty, got %q", cfgRef.Difficulty)
	}
	if cfgRef.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetryAndOptions(context.Background(), "", RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetryAndOptions(context.Background(), ServiceMinesweeper, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("MINESWEEPER_OTEL_ENDPOINT", "")
	want := errors.New("run failed")
	got := RunWithTelemetryAndOptions(context.Background(), ServiceMinesweeper, RunOptions{}, func(context.Context) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("RunWithTelemetryAndOptions() = %v, want %v", got, want)
	}
}

func TestRunWithTelemetryHonorsShutdownTimeout(t *testing.T) {
	// Non-routable collector: the final flush can only end by timing out.
	t.Setenv("MINESWEEPER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("MINESWEEPER_OTEL_ENABLED", "true")

	start := time.Now()
	err := RunWithTelemetryAndOptions(context.Background(), ServiceMinesweeper, RunOptions{ShutdownTimeout: 50 * time.Millisecond}, func(ctx context.Context) error {
		_, span := otel.Tracer("entrypoint-test").Start(ctx, "work")
		span.End()
		return nil
	})
	if err != nil {
		t.Fatalf("RunWithTelemetryAndOptions() = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("shutdown took %s, expected the short timeout to apply", elapsed)
	}
}

func TestSetupLogging(t *testing.T) {
	prevPrefix, prevOut := log.Prefix(), log.Writer()
	t.Cleanup(func() {
		log.SetPrefix(prevPrefix)
		log.SetOutput(prevOut)
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	SetupLogging(ServiceMinesweeper)
	log.Print("hello")
	if !bytes.HasPrefix(buf.Bytes(), []byte("[MINESWEEPER] ")) {
		t.Fatalf("log line = %q", buf.String())
	}
}
