// internal/repl/repl.go
//
// Interactive front end for a single game session.
// Responsibilities:
//   - Line-oriented loop on a readline prompt ("> ") with slash-command
//     completion.
//   - Parse each line as a slash command or a guess.
//   - Render guess results as glyph rows; report retryable errors as a
//     single line and keep going.
//   - Exit the loop on a win, /exit, EOF, or an input/output failure.
//
// Only terminal read/write failures abort the loop; every validation or
// command-parsing failure is reported and retried.

package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/wperron/wordler/internal/game"
)

const helpText = `Welcome to Wordler!
A Wordle REPL thingy. Can you guess the five letter word?

COMMANDS:
	/help	Prints this help text.
	/letters	Shows the letters that have not been tried yet.
	/exit	Exits the game.`

const celebration = "Congrats! 🎉"

// CommandKind enumerates the inputs the loop understands.
type CommandKind int

const (
	CommandGuess CommandKind = iota
	CommandHelp
	CommandLetters
	CommandExit
)

// Command is one parsed input line.
type Command struct {
	Kind  CommandKind
	Guess string // set for CommandGuess only
}

// ParseCommand interprets a trimmed input line. Any line not starting with
// a slash is a guess; an unknown slash token is a retryable error.
func ParseCommand(line string) (Command, error) {
	switch {
	case line == "/help":
		return Command{Kind: CommandHelp}, nil
	case line == "/letters":
		return Command{Kind: CommandLetters}, nil
	case line == "/exit":
		return Command{Kind: CommandExit}, nil
	case strings.HasPrefix(line, "/"):
		return Command{}, game.ErrInvalidCommand
	default:
		return Command{Kind: CommandGuess, Guess: line}, nil
	}
}

// REPL drives one session over a line-oriented terminal.
type REPL struct {
	session *game.Session
	out     io.Writer
}

// New wraps a session for interactive play, writing to out.
func New(s *game.Session, out io.Writer) *REPL {
	return &REPL{session: s, out: out}
}

// Step processes one already-trimmed input line and returns the session
// state after it. Retryable errors are printed and leave the state at
// playing; the returned error is non-nil only for write failures.
func (r *REPL) Step(line string) (game.State, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return r.session.State, r.println(err.Error())
	}

	switch cmd.Kind {
	case CommandHelp:
		return r.session.State, r.println(helpText)

	case CommandLetters:
		return r.session.State, r.println(strings.Join(r.session.UnusedLetters(), " "))

	case CommandExit:
		r.session.Terminate()
		return r.session.State, nil

	default:
		res, err := r.session.Guess(cmd.Guess)
		if err != nil {
			return r.session.State, r.println(err.Error())
		}
		if err := r.println(res.String()); err != nil {
			return r.session.State, err
		}
		if r.session.State == game.StateWon {
			return r.session.State, r.println(celebration)
		}
		return r.session.State, nil
	}
}

// Run starts the interactive loop. The help text prints once up front,
// then lines are read until the session reaches a terminal state. EOF at
// the prompt behaves like /exit; ^C clears the current line.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "/exit",
		Stdout:          r.out,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("/help"),
			readline.PcItem("/letters"),
			readline.PcItem("/exit"),
		),
	})
	if err != nil {
		return game.IOError(err)
	}
	defer func() { _ = rl.Close() }()

	if err := r.println(helpText); err != nil {
		return err
	}

	for r.session.State == game.StatePlaying {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			r.session.Terminate()
			break
		}
		if err != nil {
			return game.IOError(err)
		}

		if _, err := r.Step(strings.TrimSpace(line)); err != nil {
			return err
		}
	}
	return nil
}

// println writes one line to the terminal, wrapping any failure as a
// non-retryable io error.
func (r *REPL) println(s string) error {
	if _, err := fmt.Fprintln(r.out, s); err != nil {
		return game.IOError(err)
	}
	return nil
}
