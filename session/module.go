package session

import (
	"github.com/google/uuid"
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/interp"
	"github.com/reusee/memsim/logs"
)

type Module struct {
	dscope.Module
}

type New func() (*Session, error)

func (Module) New(
	newInterpreter interp.NewInterpreter,
	newSpan logs.NewSpan,
	logger logs.Logger,
) New {
	return func() (*Session, error) {
		interpreter, err := newInterpreter()
		if err != nil {
			return nil, err
		}
		s := &Session{
			ID:          uuid.NewString(),
			interpreter: interpreter,
			logger:      logger,
			newSpan:     newSpan,
		}
		logger.Info("new session",
			"session", s.ID,
			"size", interpreter.Allocator().Size(),
			"method", s.Method(),
		)
		return s, nil
	}
}
