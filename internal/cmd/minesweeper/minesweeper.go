// Package minesweeper parses terminal game flags and runs a play session.
package minesweeper

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/louisbranch/minesweeper/internal/core/mines"
	entrypoint "github.com/louisbranch/minesweeper/internal/platform/cmd"
	"github.com/louisbranch/minesweeper/internal/platform/i18n/catalog"
	"github.com/louisbranch/minesweeper/internal/random"
	"github.com/louisbranch/minesweeper/internal/terminal"
)

// Config holds minesweeper command configuration.
type Config struct {
	Difficulty string `env:"MINESWEEPER_DIFFICULTY" envDefault:"easy"`
	// Rows, Columns and Bombs override the preset when non-zero.
	Rows    int `env:"MINESWEEPER_ROWS"`
	Columns int `env:"MINESWEEPER_COLUMNS"`
	Bombs   int `env:"MINESWEEPER_BOMBS"`
	// Seed fixes the mine layout; zero draws a random seed.
	Seed   int64  `env:"MINESWEEPER_SEED"`
	Locale string `env:"MINESWEEPER_LOCALE" envDefault:"en-US"`
	// OTelShutdownTimeout bounds the span flush on exit.
	OTelShutdownTimeout time.Duration `env:"MINESWEEPER_OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Overrides converts the non-zero size fields into engine overrides.
func (c Config) Overrides() mines.Overrides {
	var o mines.Overrides
	if c.Rows != 0 {
		o.Rows = mines.IntPtr(c.Rows)
	}
	if c.Columns != 0 {
		o.Columns = mines.IntPtr(c.Columns)
	}
	if c.Bombs != 0 {
		o.Bombs = mines.IntPtr(c.Bombs)
	}
	return o
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Difficulty preset: easy, medium, hard or custom")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board rows (overrides the preset)")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Board columns (overrides the preset)")
	fs.IntVar(&cfg.Bombs, "bombs", cfg.Bombs, "Number of mines (overrides the preset)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Mine layout seed (0 picks one at random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale")
	fs.DurationVar(&cfg.OTelShutdownTimeout, "otel-shutdown-timeout", cfg.OTelShutdownTimeout, "Maximum time spent flushing traces on exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays on stdin and stdout until the player quits.
func Run(ctx context.Context, cfg Config) error {
	return RunWithIO(ctx, cfg, os.Stdin, os.Stdout)
}

// RunWithIO plays against the given reader and writer.
func RunWithIO(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdownTimeout}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceMinesweeper, options, func(ctx context.Context) error {
		seed, err := random.Resolve(cfg.Seed)
		if err != nil {
			return err
		}
		rng := random.NewRand(seed)
		engine, err := mines.New(cfg.Difficulty, cfg.Overrides(), rng)
		if err != nil {
			return err
		}
		log.Printf("seed=%d", seed)

		if !catalog.Default().HasLocale(cfg.Locale) {
			log.Printf("locale %q not available, falling back to %s", cfg.Locale, catalog.BaseLocale)
		}
		session, err := terminal.NewSession(engine, out,
			terminal.WithLocale(cfg.Locale),
			terminal.WithRand(rng),
		)
		if err != nil {
			return err
		}
		return session.Run(ctx, in)
	})
}
