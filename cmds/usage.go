package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage writes commands in name order, aliases folded into their command.
func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, 0, p.commands)
}

func writeCommands(w io.Writer, depth int, commands map[string]*Command) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil ||
			slices.Contains(command.Aliases, name) ||
			strings.HasSuffix(name, ".") {
			continue
		}
		line := strings.Repeat("  ", depth+1) + name
		if len(command.Aliases) > 0 {
			line += ", " + strings.Join(command.Aliases, ", ")
		}
		if argNames := commandArgs(command); argNames != "" {
			line += " " + argNames
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			writeCommands(w, depth+1, command.Subs)
		}
	}
}

func commandArgs(command *Command) string {
	if !command.Func.IsValid() {
		return ""
	}
	var parts []string
	t := command.Func.Type()
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+in.Elem().Kind().String()+"]")
		} else {
			parts = append(parts, "<"+in.Kind().String()+">")
		}
	}
	return strings.Join(parts, " ")
}
