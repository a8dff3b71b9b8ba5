// Package terminal runs an interactive Minesweeper game over line-based
// text input and output.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/louisbranch/minesweeper/internal/core/mines"
	apperrors "github.com/louisbranch/minesweeper/internal/platform/errors"
	"github.com/louisbranch/minesweeper/internal/platform/i18n/catalog"
)

const tracerName = "github.com/louisbranch/minesweeper/internal/terminal"

// Session owns one engine at a time and replays player commands against it.
type Session struct {
	engine  *mines.Engine
	out     io.Writer
	locale  string
	printer *message.Printer
	rng     *rand.Rand
	clock   *Clock
	tracer  trace.Tracer
}

// Option configures a Session.
type Option func(*Session)

// WithLocale selects the catalog locale for all output.
func WithLocale(locale string) Option {
	return func(s *Session) {
		s.locale = locale
	}
}

// WithRand sets the random source for games started with "n".
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithNow sets the time source used by the game clock.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		s.clock = NewClock(now)
	}
}

// WithTracer overrides the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = tracer
	}
}

// NewSession creates a session around an already constructed engine.
func NewSession(engine *mines.Engine, out io.Writer, opts ...Option) (*Session, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if out == nil {
		return nil, errors.New("output writer is required")
	}
	s := &Session{
		engine: engine,
		out:    out,
		locale: apperrors.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewClock(nil)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	s.printer = catalog.Default().Printer(s.locale)
	return s, nil
}

// Engine returns the game currently being played.
func (s *Session) Engine() *mines.Engine {
	return s.engine
}

// Elapsed returns the current game's clock reading.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Run reads commands from in until "q", end of input or ctx is done.
// Game errors are printed and play continues; only I/O failures are returned.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if in == nil {
		return errors.New("input reader is required")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := scanLines(ctx, in)

	s.logGameStart()
	if err := s.render(); err != nil {
		return err
	}
	for {
		if err := s.prompt(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return s.bye()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return s.bye()
			}
			quit, err := s.Execute(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return s.bye()
			}
		}
	}
}

// Execute applies one input line and redraws. It reports whether the
// player asked to quit.
func (s *Session) Execute(ctx context.Context, line string) (bool, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return false, s.printError(err)
	}

	switch cmd.Kind {
	case CommandQuit:
		return true, nil
	case CommandHelp:
		return false, s.println(s.printer.Sprintf("game.help"))
	case CommandNone:
		return false, s.render()
	}

	if err := s.apply(ctx, cmd); err != nil {
		if werr := s.printError(err); werr != nil {
			return false, werr
		}
	}
	return false, s.render()
}

func (s *Session) apply(ctx context.Context, cmd Command) (err error) {
	_, span := s.tracer.Start(ctx, "minesweeper."+string(cmd.Kind),
		trace.WithAttributes(attribute.String("minesweeper.command", string(cmd.Kind))),
	)
	defer func() {
		span.SetAttributes(attribute.String("minesweeper.status", s.engine.Status().String()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
			if reason := apperrors.GetMetadata(err)["Reason"]; reason != "" {
				span.SetAttributes(attribute.String("minesweeper.error.reason", reason))
			}
		}
		span.End()
	}()

	if cmd.Kind == CommandNew {
		return s.newGame(cmd)
	}

	span.SetAttributes(
		attribute.Int("minesweeper.row", cmd.Row),
		attribute.Int("minesweeper.column", cmd.Column),
	)
	before := s.engine.Status()
	if cmd.Mutating() {
		s.clock.Start()
	}
	switch cmd.Kind {
	case CommandReveal:
		err = s.engine.CheckCell(cmd.Row, cmd.Column)
	case CommandFlag:
		err = s.engine.FlagCell(cmd.Row, cmd.Column)
	}
	if err != nil {
		return err
	}
	if after := s.engine.Status(); after.Terminal() && !before.Terminal() {
		s.clock.Stop()
		log.Printf("game over: status=%s elapsed=%s layout:\n%s", after, s.clock.Elapsed().Round(time.Second), s.engine.Layout())
	}
	return nil
}

func (s *Session) newGame(cmd Command) error {
	difficulty := cmd.Difficulty
	overrides := cmd.Overrides
	if difficulty == "" {
		dims := s.engine.Dimensions()
		difficulty = string(s.engine.Difficulty())
		overrides = mines.Overrides{
			Rows:    mines.IntPtr(dims.Rows),
			Columns: mines.IntPtr(dims.Columns),
			Bombs:   mines.IntPtr(dims.Bombs),
		}
	}
	engine, err := mines.New(difficulty, overrides, s.rng)
	if err != nil {
		return err
	}
	s.engine = engine
	s.clock.Reset()
	s.logGameStart()
	return s.println(s.printer.Sprintf("game.new",
		string(engine.Difficulty()), engine.NumRows(), engine.NumColumns(), engine.NumBombs()))
}

func (s *Session) render() error {
	header := s.printer.Sprintf("game.header",
		s.printer.Sprintf("game.status."+s.engine.Status().String()),
		s.engine.NumRows(),
		s.engine.NumColumns(),
		s.engine.RemainingMines(),
		int(s.clock.Elapsed()/time.Second),
	)
	if err := s.println(header); err != nil {
		return err
	}
	return RenderGrid(s.out, s.engine.DisplayGrid())
}

func (s *Session) printError(err error) error {
	var inErr *inputError
	if errors.As(err, &inErr) {
		return s.println(s.printer.Sprintf(inErr.key, inErr.args...))
	}
	return s.println(apperrors.Localize(err, s.locale))
}

func (s *Session) prompt() error {
	_, err := io.WriteString(s.out, s.printer.Sprintf("game.prompt"))
	return err
}

func (s *Session) bye() error {
	return s.println(s.printer.Sprintf("game.bye"))
}

func (s *Session) println(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

func (s *Session) logGameStart() {
	d := s.engine.Dimensions()
	log.Printf("game started: difficulty=%s rows=%d columns=%d bombs=%d",
		s.engine.Difficulty(), d.Rows, d.Columns, d.Bombs)
}

// scanLines feeds input lines to a channel until EOF or ctx is done. The
// error channel receives the scanner error once lines is closed.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errs <- nil
				return
			}
		}
		errs <- scanner.Err()
	}()
	return lines, errs
}
