package server

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/nets"
	"github.com/reusee/memsim/session"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

func (Module) Server(
	newSession session.New,
	logger logs.Logger,
) *Server {
	return &Server{
		newSession: newSession,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// ListenAndServe serves on the configured address until ctx is done.
type ListenAndServe func(ctx context.Context) error

func (Module) ListenAndServe(
	server *Server,
	listen nets.Listen,
	addr memconfigs.ListenAddr,
	maxSessions memconfigs.MaxSessions,
) ListenAndServe {
	return func(ctx context.Context) error {
		ln, err := listen(ctx, string(addr), int(maxSessions))
		if err != nil {
			return err
		}
		return server.Serve(ctx, ln)
	}
}
