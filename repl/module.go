package repl

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/memsim/debugs"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/session"
)

type Module struct {
	dscope.Module
}

type New func(out io.Writer) (*REPL, error)

func (Module) New(
	newSession session.New,
	logger logs.Logger,
	tap debugs.Tap,
	historyFile memconfigs.HistoryFile,
) New {
	return func(out io.Writer) (*REPL, error) {
		s, err := newSession()
		if err != nil {
			return nil, err
		}
		return &REPL{
			session:     s,
			logger:      logger,
			tap:         tap,
			historyFile: string(historyFile),
			out:         out,
		}, nil
	}
}
