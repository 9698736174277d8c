package debugs

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memory"
	"github.com/reusee/memsim/render"
	"github.com/reusee/memsim/session"
	"go.starlark.net/starlark"
)

// ScriptTarget is what scripts drive.
type ScriptTarget interface {
	Execute(ctx context.Context, line string) (session.Output, error)
	Blocks() []memory.Block
	Identifiers() []string
}

// RunScript executes starlark source with these predeclared functions:
//
//	run(command) returns the rendered result, failing the script on error
//	try_run(command) returns the rendered result or the error text
//	blocks() returns the memory blocks as dicts
//	identifiers() returns the defined identifiers
//	memory_map() returns the rendered memory map
//
// print writes a line to out.
type RunScript func(ctx context.Context, filename string, src any, target ScriptTarget, out io.Writer) error

func (Module) RunScript(
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunScript {
	return func(ctx context.Context, filename string, src any, target ScriptTarget, out io.Writer) error {
		// command spans become children of the script span
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "run script", "file", filename)

		run := func(command string) (string, error) {
			output, err := target.Execute(ctx, command)
			if err != nil {
				return "", err
			}
			return output.Text, nil
		}

		predeclared := starlark.StringDict{

			"run": starlark.NewBuiltin("run", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var command string
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &command); err != nil {
					return nil, err
				}
				text, err := run(command)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", command, err)
				}
				return starlark.String(text), nil
			}),

			"try_run": starlark.NewBuiltin("try_run", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var command string
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &command); err != nil {
					return nil, err
				}
				text, err := run(command)
				if err != nil {
					return starlark.String(session.ErrorText(err)), nil
				}
				return starlark.String(text), nil
			}),

			"blocks": starlark.NewBuiltin("blocks", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
					return nil, err
				}
				return toStarlarkValue(target.Blocks()), nil
			}),

			"identifiers": starlark.NewBuiltin("identifiers", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
					return nil, err
				}
				return toStarlarkValue(target.Identifiers()), nil
			}),

			"memory_map": starlark.NewBuiltin("memory_map", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
					return nil, err
				}
				return starlark.String(render.Memory(target.Blocks())), nil
			}),
		}

		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		if _, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared); err != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("script %s: %w", filename, err))
		}
		return nil
	}
}
