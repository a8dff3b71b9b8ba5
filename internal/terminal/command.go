package terminal

import (
	"strconv"
	"strings"

	"github.com/louisbranch/minesweeper/internal/core/mines"
)

// CommandKind names one line of player input.
type CommandKind string

const (
	CommandReveal CommandKind = "reveal"
	CommandFlag   CommandKind = "flag"
	CommandNew    CommandKind = "new"
	CommandHelp   CommandKind = "help"
	CommandQuit   CommandKind = "quit"
	// CommandNone is a blank line; the board is simply redrawn.
	CommandNone CommandKind = "none"
)

// Command is a parsed input line.
type Command struct {
	Kind   CommandKind
	Row    int
	Column int
	// Difficulty is empty when "n" repeats the current game setup.
	Difficulty string
	Overrides  mines.Overrides
}

// Mutating reports whether the command changes the board.
func (c Command) Mutating() bool {
	return c.Kind == CommandReveal || c.Kind == CommandFlag
}

// inputError is a malformed command. Key is a game catalog message key.
type inputError struct {
	key  string
	args []any
}

func (e *inputError) Error() string {
	return e.key
}

var commandAliases = map[string]CommandKind{
	"r":      CommandReveal,
	"reveal": CommandReveal,
	"f":      CommandFlag,
	"flag":   CommandFlag,
	"n":      CommandNew,
	"new":    CommandNew,
	"h":      CommandHelp,
	"help":   CommandHelp,
	"?":      CommandHelp,
	"q":      CommandQuit,
	"quit":   CommandQuit,
	"exit":   CommandQuit,
}

// ParseCommand parses one input line. Verbs are case-insensitive.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CommandNone}, nil
	}
	verb := strings.ToLower(fields[0])
	kind, ok := commandAliases[verb]
	if !ok {
		return Command{}, &inputError{key: "game.input.unknown", args: []any{fields[0]}}
	}
	args := fields[1:]

	switch kind {
	case CommandReveal, CommandFlag:
		if len(args) != 2 {
			return Command{}, &inputError{key: "game.input.coordinates"}
		}
		values, ok := parseInts(args)
		if !ok {
			return Command{}, &inputError{key: "game.input.coordinates"}
		}
		return Command{Kind: kind, Row: values[0], Column: values[1]}, nil
	case CommandNew:
		return parseNew(args)
	default:
		if len(args) != 0 {
			return Command{}, &inputError{key: "game.input.unknown", args: []any{line}}
		}
		return Command{Kind: kind}, nil
	}
}

func parseNew(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Command{Kind: CommandNew}, nil
	case 1:
		return Command{Kind: CommandNew, Difficulty: args[0]}, nil
	case 4:
		values, ok := parseInts(args[1:])
		if !ok {
			return Command{}, &inputError{key: "game.input.new"}
		}
		return Command{
			Kind:       CommandNew,
			Difficulty: args[0],
			Overrides: mines.Overrides{
				Rows:    mines.IntPtr(values[0]),
				Columns: mines.IntPtr(values[1]),
				Bombs:   mines.IntPtr(values[2]),
			},
		}, nil
	default:
		return Command{}, &inputError{key: "game.input.new"}
	}
}

func parseInts(args []string) ([]int, bool) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
