package main

import (
	"context"
	"io"

	"github.com/reusee/memsim/debugs"
	"github.com/reusee/memsim/session"
)

// RunScriptFiles runs starlark files in order against one fresh session.
type RunScriptFiles func(ctx context.Context, paths []string, out io.Writer) error

func (Module) RunScriptFiles(
	newSession session.New,
	runScript debugs.RunScript,
) RunScriptFiles {
	return func(ctx context.Context, paths []string, out io.Writer) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		for _, path := range paths {
			// src nil reads the file
			if err := runScript(ctx, path, nil, s, out); err != nil {
				return err
			}
		}
		return nil
	}
}
