package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/memsim/cmds"
	"github.com/reusee/memsim/configs"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/modes"
	"github.com/reusee/memsim/repl"
	"github.com/reusee/memsim/server"
)

var (
	serve       = cmds.Switch("serve")
	scriptPaths = cmds.Collect[string]("-script")
	dev         = cmds.Switch("-dev")

	configAction string

	wrap = e5.Wrap.With(e5.WrapStacktrace)
)

func init() {
	cmds.Describe("serve", "serve sessions over websocket")
	cmds.Describe("-script", "run a starlark script, repeatable; scripts share one session")
	cmds.Describe("-dev", "development mode, logging at debug level")
	cmds.Define("config", cmds.Sub(map[string]*cmds.Command{
		"show": cmds.Func(func() {
			configAction = "show"
		}).Desc("print settings and the values each config file defines"),
		"paths": cmds.Func(func() {
			configAction = "paths"
		}).Desc("print the config files in use"),
	}).Desc("inspect configuration"))
}

func ce(err error) {
	if err != nil {
		panic(wrap(err))
	}
}

func main() {
	cmds.GlobalExecutor.MustExecute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if *dev {
		scope = scope.Fork(func() modes.Mode {
			return modes.ModeDevelopment
		})
	}

	scope.Call(func(
		loader configs.Loader,
		_ memconfigs.LogLevel,
		logger logs.Logger,
	) {
		ce(loader.Validate())
		logger.Info("start", "mode", dscope.Get[modes.Mode](scope))
	})

	switch {

	case configAction == "show":
		scope.Call(func(
			show memconfigs.Show,
		) {
			ce(show(os.Stdout))
		})

	case configAction == "paths":
		scope.Call(func(
			paths memconfigs.ConfigPaths,
		) {
			for _, path := range paths {
				fmt.Println(path)
			}
		})

	case len(*scriptPaths) > 0:
		scope.Call(func(
			runScripts RunScriptFiles,
		) {
			ce(runScripts(ctx, *scriptPaths, os.Stdout))
		})

	case *serve:
		scope.Call(func(
			listenAndServe server.ListenAndServe,
		) {
			ce(listenAndServe(ctx))
		})

	default:
		scope.Call(func(
			newREPL repl.New,
		) {
			r, err := newREPL(os.Stdout)
			ce(err)
			ce(r.Run(ctx, os.Stdin))
		})

	}
}
