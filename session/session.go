// Package session runs command lines against one interpreter and renders the outcome.
package session

import (
	"context"
	"errors"

	"github.com/reusee/memsim/interp"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memory"
	"github.com/reusee/memsim/parser"
	"github.com/reusee/memsim/render"
)

// Output is what a command produced.
type Output struct {
	// Text is the rendered result, empty for UI actions and failures
	Text string
	// Clear asks the caller to wipe its displayed history
	Clear      bool
	SideEffect bool
	// Blocks is the snapshot taken after a side effect
	Blocks []memory.Block
}

// Session is not safe for concurrent use.
type Session struct {
	ID          string
	interpreter *interp.Interpreter
	logger      logs.Logger
	newSpan     logs.NewSpan
	commands    int
}

func (s *Session) Interpreter() *interp.Interpreter {
	return s.interpreter
}

// Execute parses and evaluates one command line.
// Output.SideEffect and Output.Blocks are set even when an error is returned.
func (s *Session) Execute(ctx context.Context, line string) (out Output, err error) {
	ctx, _ = s.newSpan(ctx, "")
	s.commands++
	defer func() {
		if err != nil {
			s.logger.DebugContext(ctx, "command failed",
				"session", s.ID,
				"command", line,
				"error", err,
			)
		}
	}()

	nodes, err := parser.Parse(line)
	if err != nil {
		return out, err
	}

	res, err := s.interpreter.Evaluate(nodes)
	if res.SideEffect {
		out.SideEffect = true
		out.Blocks = s.interpreter.Snapshot()
	}
	if err != nil {
		return out, err
	}

	if res.Kind == interp.ResultUIAction && res.Action == interp.ActionClearConsole {
		out.Clear = true
		return out, nil
	}
	out.Text = render.Result(res)
	return out, nil
}

func (s *Session) Blocks() []memory.Block {
	return s.interpreter.Snapshot()
}

func (s *Session) Identifiers() []string {
	return s.interpreter.Identifiers()
}

func (s *Session) Method() string {
	return s.interpreter.Allocator().Strategy().String()
}

// Commands returns the number of commands executed.
func (s *Session) Commands() int {
	return s.commands
}

// ErrorText formats an error for display. Incomplete input gets a hint about unbalanced parentheses.
func ErrorText(err error) string {
	if errors.Is(err, interp.ErrIncompleteInput) {
		return "Parsing error: Command is incomplete.\n  Did you forget a ')'?"
	}
	return err.Error()
}
