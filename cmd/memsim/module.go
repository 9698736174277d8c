package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/debugs"
	"github.com/reusee/memsim/interp"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/repl"
	"github.com/reusee/memsim/server"
	"github.com/reusee/memsim/session"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs memconfigs.Module
	Interp  interp.Module
	Session session.Module
	Debugs  debugs.Module
	REPL    repl.Module
	Server  server.Module
}
