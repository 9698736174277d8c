package interp

import (
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/memory"
)

type Module struct {
	dscope.Module
}

// NewInterpreter creates an interpreter with the configured memory size and allocation method.
type NewInterpreter func() (*Interpreter, error)

func (Module) NewInterpreter(
	size memconfigs.MemorySize,
	method memconfigs.AllocationMethod,
	logger logs.Logger,
) NewInterpreter {
	return func() (*Interpreter, error) {
		strategy, err := memory.ParseStrategy(string(method))
		if err != nil {
			return nil, err
		}
		return New(int(size), strategy, logger)
	}
}
