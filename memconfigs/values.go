package memconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/memsim/cmds"
	"github.com/reusee/memsim/configs"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/vars"
)

var (
	memorySizeFlag       = cmds.Var[int]("-memory-size")
	allocationMethodFlag = cmds.Var[string]("-method")
	historyFileFlag      = cmds.Var[string]("-history")
	listenFlag           = cmds.Var[string]("-listen")
	maxSessionsFlag      = cmds.Var[int]("-max-sessions")
)

func init() {
	cmds.Describe("-memory-size", "number of memory cells")
	cmds.Describe("-method", `allocation method: "first fit", "best fit" or "worst fit"`)
	cmds.Describe("-history", "REPL history file")
	cmds.Describe("-listen", "address of the session server")
	cmds.Describe("-max-sessions", "max concurrent server sessions")
}

const (
	DefaultMemorySize       = 50
	DefaultAllocationMethod = "first fit"
	DefaultListenAddr       = "127.0.0.1:8080"
	DefaultMaxSessions      = 16
)

type MemorySize int

func (MemorySize) ConfigKey() string {
	return "memory_size"
}

var _ configs.Configurable = MemorySize(0)

func (Module) MemorySize(
	loader configs.Loader,
) MemorySize {
	return vars.FirstNonZero(
		MemorySize(vars.DerefOrZero(memorySizeFlag)),
		configs.Lookup[MemorySize](loader),
		DefaultMemorySize,
	)
}

// AllocationMethod is the name of the initial allocation strategy, parsed by the interpreter.
type AllocationMethod string

func (AllocationMethod) ConfigKey() string {
	return "allocation_method"
}

var _ configs.Configurable = AllocationMethod("")

func (Module) AllocationMethod(
	loader configs.Loader,
) AllocationMethod {
	return vars.FirstNonZero(
		AllocationMethod(vars.DerefOrZero(allocationMethodFlag)),
		configs.Lookup[AllocationMethod](loader),
		DefaultAllocationMethod,
	)
}

type HistoryFile string

func (HistoryFile) ConfigKey() string {
	return "history_file"
}

var _ configs.Configurable = HistoryFile("")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var defaultPath HistoryFile
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = HistoryFile(filepath.Join(home, ".memsim_history"))
	}
	return vars.FirstNonZero(
		HistoryFile(vars.DerefOrZero(historyFileFlag)),
		configs.Lookup[HistoryFile](loader),
		defaultPath,
	)
}

type ListenAddr string

func (ListenAddr) ConfigKey() string {
	return "listen"
}

var _ configs.Configurable = ListenAddr("")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return vars.FirstNonZero(
		ListenAddr(vars.DerefOrZero(listenFlag)),
		configs.Lookup[ListenAddr](loader),
		DefaultListenAddr,
	)
}

type MaxSessions int

func (MaxSessions) ConfigKey() string {
	return "max_sessions"
}

var _ configs.Configurable = MaxSessions(0)

func (Module) MaxSessions(
	loader configs.Loader,
) MaxSessions {
	return vars.FirstNonZero(
		MaxSessions(vars.DerefOrZero(maxSessionsFlag)),
		configs.Lookup[MaxSessions](loader),
		DefaultMaxSessions,
	)
}

type LogLevel string

func (LogLevel) ConfigKey() string {
	return "log_level"
}

var _ configs.Configurable = LogLevel("")

// LogLevel applies the configured level unless a log level flag was given.
func (Module) LogLevel(
	loader configs.Loader,
	logger logs.Logger,
) LogLevel {
	lv := configs.Lookup[LogLevel](loader)
	if err := logs.SetLevel(string(lv)); err != nil {
		logger.Warn("log level", "error", err)
	}
	return lv
}
