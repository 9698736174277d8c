// Package interp evaluates parsed commands against a simulated memory space.
package interp

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/memsim/ast"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memory"
	"github.com/samber/lo"
)

// Interpreter owns a symbol table and an allocator.
// It is not safe for concurrent use.
type Interpreter struct {
	allocator  *memory.Allocator
	variables  map[string]Variable
	logger     logs.Logger
	sideEffect bool
}

func New(size int, strategy memory.Strategy, logger logs.Logger) (*Interpreter, error) {
	allocator, err := memory.New(size, strategy)
	if err != nil {
		return nil, err
	}
	i := &Interpreter{
		allocator: allocator,
		logger:    logger,
	}
	i.resetVariables()
	return i, nil
}

// Reset clears the memory space and the symbol table, keeping the size and allocation method.
func (i *Interpreter) Reset() error {
	if err := i.allocator.Reset(i.allocator.Size()); err != nil {
		return err
	}
	i.resetVariables()
	return nil
}

func (i *Interpreter) resetVariables() {
	i.variables = make(map[string]Variable, len(Builtins))
	for _, b := range Builtins {
		i.variables[b.String()] = Variable{
			Type:  TypeFunction,
			Value: b,
		}
	}
}

// Evaluate evaluates the first candidate parse tree.
// SideEffect of the result is reported even when an error is returned.
func (i *Interpreter) Evaluate(candidates []ast.Node) (ret Result, err error) {
	if len(candidates) == 0 {
		return ret, ErrIncompleteInput
	}
	i.sideEffect = false
	defer func() {
		ret.SideEffect = i.sideEffect
		i.sideEffect = false
	}()
	return i.eval(candidates[0])
}

func (i *Interpreter) Allocator() *memory.Allocator {
	return i.allocator
}

func (i *Interpreter) Snapshot() []memory.Block {
	return i.allocator.Snapshot()
}

func (i *Interpreter) Lookup(name string) (Variable, bool) {
	v, ok := i.variables[name]
	return v, ok
}

// Identifiers returns the sorted names of all symbols, builtins included.
func (i *Interpreter) Identifiers() []string {
	return slices.Sorted(maps.Keys(i.variables))
}

// FunctionNames returns the sorted names of function symbols.
func (i *Interpreter) FunctionNames() []string {
	return lo.Filter(i.Identifiers(), func(name string, _ int) bool {
		return i.variables[name].Type == TypeFunction
	})
}

func (i *Interpreter) String() string {
	return fmt.Sprintf("interpreter(size=%d, method=%s, symbols=%d)",
		i.allocator.Size(),
		i.allocator.Strategy(),
		len(i.variables),
	)
}
