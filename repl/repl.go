// Package repl is the interactive console of the simulator.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/memsim/debugs"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/render"
	"github.com/reusee/memsim/session"
	"golang.org/x/term"
)

const (
	Prompt = "> "
	Banner = "-> Type help() for usage."

	clearScreen = "\x1b[H\x1b[2J"
)

type REPL struct {
	session     *session.Session
	logger      logs.Logger
	tap         debugs.Tap
	historyFile string
	out         io.Writer
}

func (r *REPL) Session() *session.Session {
	return r.session
}

// Start prints the banner and the initial memory map.
func (r *REPL) Start() {
	fmt.Fprintln(r.out, Banner)
	fmt.Fprintln(r.out, render.Memory(r.session.Blocks()))
}

// Handle runs one input line, returning true when the console should quit.
func (r *REPL) Handle(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return r.meta(ctx, line)
	}

	output, err := r.session.Execute(ctx, line)
	if err != nil {
		fmt.Fprintln(r.out, session.ErrorText(err))
	}
	if output.Clear {
		fmt.Fprint(r.out, clearScreen)
	}
	if output.Text != "" {
		fmt.Fprintln(r.out, output.Text)
	}
	if output.SideEffect {
		fmt.Fprintln(r.out, render.Memory(output.Blocks))
	}
	return false
}

func (r *REPL) meta(ctx context.Context, line string) (quit bool) {
	switch line {

	case ".quit", ".exit":
		return true

	case ".memory":
		fmt.Fprintln(r.out, render.Memory(r.session.Blocks()))

	case ".stats":
		fmt.Fprintln(r.out, render.NewStats(r.session.Blocks()))

	case ".dump":
		bs, err := render.YAML(r.session.Blocks(), r.session.Method())
		if err != nil {
			fmt.Fprintln(r.out, err)
			break
		}
		r.out.Write(bs)

	case ".tap":
		r.tap(ctx, "repl", map[string]any{
			"session": r.session.ID,
			"run": func(command string) string {
				output, err := r.session.Execute(ctx, command)
				if err != nil {
					return session.ErrorText(err)
				}
				return output.Text
			},
			"blocks":      r.session.Blocks(),
			"identifiers": r.session.Identifiers(),
			"method":      r.session.Method(),
		})

	case ".help":
		fmt.Fprintln(r.out, strings.Join(metaCommands, " "))

	default:
		fmt.Fprintf(r.out, "unknown command %s, try .help\n", line)
	}
	return false
}

// Run reads lines from in until end of input or .quit.
// A terminal gets line editing, history and completion.
func (r *REPL) Run(ctx context.Context, in *os.File) error {
	r.Start()
	if !term.IsTerminal(int(in.Fd())) {
		return r.RunLines(ctx, in)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      Prompt,
		HistoryFile: r.historyFile,
		AutoComplete: completer{
			interpreter: r.session.Interpreter,
		},
		Stdin:  readline.NewCancelableStdin(in),
		Stdout: r.out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if r.Handle(ctx, line) {
			return nil
		}
	}
}

// RunLines reads commands without line editing.
func (r *REPL) RunLines(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Handle(ctx, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}
