package cmds

import "fmt"

// GlobalExecutor holds the flags and commands defined by package initializers.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

// Describe sets the description of a defined command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command: %s", name))
	}
	command.Desc(desc)
}
