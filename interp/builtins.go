package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reusee/memsim/memory"
)

// Builtin enumerates the functions registered in every fresh symbol table.
type Builtin uint8

const (
	BuiltinHelp Builtin = iota + 1
	BuiltinReset
	BuiltinClearConsole
	BuiltinMalloc
	BuiltinFree
	BuiltinFreeAll
	BuiltinSetMemorySize
	BuiltinCoalesce
	BuiltinSizeof
	BuiltinSetAllocationMethod
	BuiltinGetAllocationMethod
)

var Builtins = []Builtin{
	BuiltinHelp,
	BuiltinReset,
	BuiltinClearConsole,
	BuiltinMalloc,
	BuiltinFree,
	BuiltinFreeAll,
	BuiltinSetMemorySize,
	BuiltinCoalesce,
	BuiltinSizeof,
	BuiltinSetAllocationMethod,
	BuiltinGetAllocationMethod,
}

func (b Builtin) String() string {
	switch b {
	case BuiltinHelp:
		return "help"
	case BuiltinReset:
		return "reset"
	case BuiltinClearConsole:
		return "clearConsole"
	case BuiltinMalloc:
		return "malloc"
	case BuiltinFree:
		return "free"
	case BuiltinFreeAll:
		return "freeAll"
	case BuiltinSetMemorySize:
		return "setMemorySize"
	case BuiltinCoalesce:
		return "coalesce"
	case BuiltinSizeof:
		return "sizeof"
	case BuiltinSetAllocationMethod:
		return "setAllocationMethod"
	case BuiltinGetAllocationMethod:
		return "getAllocationMethod"
	}
	return "invalid"
}

// Arity returns the number of arguments the builtin takes.
func (b Builtin) Arity() int {
	switch b {
	case BuiltinMalloc,
		BuiltinFree,
		BuiltinSetMemorySize,
		BuiltinSizeof,
		BuiltinSetAllocationMethod:
		return 1
	}
	return 0
}

func (b Builtin) Usage() string {
	switch b {
	case BuiltinMalloc, BuiltinFree, BuiltinSetMemorySize:
		return b.String() + "(int)"
	case BuiltinSizeof:
		return b.String() + "(type)"
	case BuiltinSetAllocationMethod:
		return b.String() + "(string)"
	}
	return b.String() + "()"
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("\n- Use C-style syntax\n")
	sb.WriteString("- Variable declaration and assignment is supported\n")
	sb.WriteString("- Intelligent suggestions are provided. You can use tab to insert a suggestion.\n")
	sb.WriteString("- Allocation methods: ")
	sb.WriteString(strings.Join(memory.StrategyNames(), ", "))
	sb.WriteString("\n- The following functions are available:")
	for _, b := range Builtins {
		if b == BuiltinHelp {
			continue
		}
		sb.WriteString("\n  - ")
		sb.WriteString(b.Usage())
	}
	return sb.String()
}

func (i *Interpreter) call(b Builtin, arg *Variable) (ret Result, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("runtime exception in %s(): %w", b, err)
		}
	}()

	switch b {

	case BuiltinHelp:
		return valueResult(TypeString, helpText()), nil

	case BuiltinReset:
		if err := i.Reset(); err != nil {
			return ret, err
		}
		i.sideEffect = true
		i.logger.Debug("reset", "size", i.allocator.Size())
		return valueResult(TypeInt, nil), nil

	case BuiltinClearConsole:
		return Result{
			Kind:   ResultUIAction,
			Action: ActionClearConsole,
		}, nil

	case BuiltinMalloc:
		size, err := intArgument(arg, memory.ErrInvalidSize, func(negative bool, value string) error {
			if negative {
				return memory.SizeNegativeError()
			}
			return memory.OutOfMemoryError(value, i.allocator.Strategy())
		})
		if err != nil {
			return ret, err
		}
		ptr, err := i.allocator.Allocate(size)
		if err != nil {
			return ret, err
		}
		i.sideEffect = true
		i.logger.Debug("malloc",
			"size", size,
			"pointer", ptr,
			"method", i.allocator.Strategy(),
		)
		return valueResult(TypeInt, int64(ptr)), nil

	case BuiltinFree:
		ptr, err := intArgument(arg, memory.ErrInvalidPointer, func(_ bool, value string) error {
			return memory.PointerOutOfBoundsError(value)
		})
		if err != nil {
			return ret, err
		}
		if err := i.allocator.Release(ptr); err != nil {
			return ret, err
		}
		i.sideEffect = true
		i.logger.Debug("free", "pointer", ptr)
		return valueResult(TypeInt, nil), nil

	case BuiltinFreeAll:
		n := i.allocator.ReleaseAll()
		i.sideEffect = true
		i.logger.Debug("free all", "chunks", n)
		return valueResult(TypeInt, int64(n)), nil

	case BuiltinSetMemorySize:
		size, err := intArgument(arg, memory.ErrInvalidSize, func(negative bool, value string) error {
			if negative {
				return memory.MemorySizeError("Got " + value + ".")
			}
			return fmt.Errorf("%w: memory size %s is too large", memory.ErrInvalidSize, value)
		})
		if err != nil {
			return ret, err
		}
		from := i.allocator.Size()
		if err := i.allocator.Resize(size); err != nil {
			return ret, err
		}
		i.sideEffect = true
		i.logger.Debug("resize", "from", from, "to", size)
		return valueResult(TypeInt, nil), nil

	case BuiltinCoalesce:
		merged := i.allocator.Coalesce()
		i.sideEffect = true
		i.logger.Debug("coalesce", "merged", merged)
		return valueResult(TypeInt, nil), nil

	case BuiltinSizeof:
		return valueResult(TypeInt, sizeof(arg)), nil

	case BuiltinSetAllocationMethod:
		if arg == nil {
			return ret, fmt.Errorf("%w: expecting one of %s", memory.ErrInvalidAllocationMethod, strings.Join(memory.StrategyNames(), ", "))
		}
		name, ok := arg.Value.(string)
		if !ok {
			return ret, fmt.Errorf("%w: expecting a string, got %s", memory.ErrInvalidAllocationMethod, arg.Type)
		}
		strategy, err := memory.ParseStrategy(name)
		if err != nil {
			return ret, err
		}
		from := i.allocator.Strategy()
		i.allocator.SetStrategy(strategy)
		i.sideEffect = true
		i.logger.Debug("allocation method", "from", from, "to", strategy)
		return valueResult(TypeString, strategy.String()), nil

	case BuiltinGetAllocationMethod:
		return valueResult(TypeString, i.allocator.Strategy().String()), nil

	}

	return ret, fmt.Errorf("%w: unknown builtin %d", ErrInternal, b)
}

func valueResult(t Type, value any) Result {
	return Result{
		Kind: ResultVariable,
		Variable: Variable{
			Type:  t,
			Value: value,
		},
	}
}

// intArgument converts an argument to an integer, accepting numeric strings.
// Integral doubles outside the int range are reported by outOfRange with their decimal form.
func intArgument(arg *Variable, sentinel error, outOfRange func(negative bool, value string) error) (int, error) {
	if arg == nil {
		return 0, fmt.Errorf("%w: missing argument", sentinel)
	}
	switch v := arg.Value.(type) {
	case int64:
		if int64(int(v)) != v {
			return 0, outOfRange(v < 0, strconv.FormatInt(v, 10))
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", sentinel, v)
		}
		// float64(math.MaxInt) rounds up to 2^63 on 64-bit platforms
		if v >= float64(math.MaxInt) || v < float64(math.MinInt) {
			return 0, outOfRange(v < 0, strconv.FormatFloat(v, 'f', -1, 64))
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", sentinel, v)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%w: argument has no value", sentinel)
	}
	return 0, fmt.Errorf("%w: expecting an integer, got %s", sentinel, arg.Type)
}

// sizeof returns the cell count of a type name or of the argument's type.
func sizeof(arg *Variable) int64 {
	if arg == nil {
		return -1
	}
	t := arg.Type
	if name, ok := arg.Value.(string); ok {
		t = Type(name)
	}
	switch t {
	case TypeInt, TypeChar:
		return 1
	case TypeDouble:
		return 2
	}
	return -1
}
