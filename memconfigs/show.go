package memconfigs

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/memsim/configs"
)

// Show writes each setting with its effective value and the values defined by each config file,
// most specific first.
type Show func(w io.Writer) error

func (Module) Show(
	loader configs.Loader,
	size MemorySize,
	method AllocationMethod,
	history HistoryFile,
	listen ListenAddr,
	maxSessions MaxSessions,
	level LogLevel,
) Show {
	return func(w io.Writer) error {
		lines := []string{
			line(size.ConfigKey(), size, fileValues[int](loader, size.ConfigKey())),
			line(method.ConfigKey(), method, fileValues[string](loader, method.ConfigKey())),
			line(history.ConfigKey(), history, fileValues[string](loader, history.ConfigKey())),
			line(listen.ConfigKey(), listen, fileValues[string](loader, listen.ConfigKey())),
			line(maxSessions.ConfigKey(), maxSessions, fileValues[int](loader, maxSessions.ConfigKey())),
			line(level.ConfigKey(), level, fileValues[string](loader, level.ConfigKey())),
		}
		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return err
	}
}

func fileValues[T any](loader configs.Loader, key string) (ret []string) {
	for v := range configs.All[T](loader, key) {
		ret = append(ret, fmt.Sprintf("%#v", v))
	}
	return
}

func line(key string, value any, fromFiles []string) string {
	ret := fmt.Sprintf("%s: %#v", key, value)
	if len(fromFiles) > 0 {
		ret += " # files: " + strings.Join(fromFiles, ", ")
	}
	return ret
}
