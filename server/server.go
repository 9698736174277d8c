// Package server serves interpreter sessions over websocket.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/render"
	"github.com/reusee/memsim/session"
)

const (
	Path = "/ws"

	writeTimeout    = time.Second * 10
	shutdownTimeout = time.Second * 5
	maxMessageSize  = 4096
)

// Request is a command sent by the client.
type Request struct {
	Command string `json:"command"`
}

// Response is sent on connect and after each command.
type Response struct {
	Session    string             `json:"session"`
	Output     string             `json:"output,omitempty"`
	Error      string             `json:"error,omitempty"`
	Clear      bool               `json:"clear,omitempty"`
	SideEffect bool               `json:"side_effect,omitempty"`
	Blocks     []render.BlockView `json:"blocks,omitempty"`
}

type Server struct {
	newSession session.New
	logger     logs.Logger
	upgrader   websocket.Upgrader

	mu      sync.Mutex
	conns   map[*websocket.Conn]struct{}
	closing bool
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+Path, s.serveWS)
	return mux
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	// runs after the listeners are closed
	httpServer.RegisterOnShutdown(s.closeAll)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// the shutdown hook runs asynchronously
	s.closeAll()
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// track registers an upgraded connection, reporting false once shutdown has begun.
func (s *Server) track(conn *websocket.Conn) (untrack func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return nil, false
	}
	s.conns[conn] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}, true
}

// closeAll closes hijacked connections, which http.Server.Shutdown does not track.
// Connections upgraded afterwards are refused by track.
func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
	for conn := range s.conns {
		goingAway(conn)
	}
}

func goingAway(conn *websocket.Conn) {
	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
		time.Now().Add(time.Second),
	)
	conn.Close()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has replied
		s.logger.Debug("upgrade", "error", err)
		return
	}
	defer conn.Close()
	untrack, ok := s.track(conn)
	if !ok {
		goingAway(conn)
		return
	}
	defer untrack()
	conn.SetReadLimit(maxMessageSize)

	sess, err := s.newSession()
	if err != nil {
		s.logger.Error("new session", "error", err)
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error()),
			time.Now().Add(writeTimeout),
		)
		return
	}
	ctx := r.Context()
	logger := s.logger.With("session", sess.ID, "remote", r.RemoteAddr)
	logger.Info("connected")
	defer func() {
		logger.Info("disconnected", "commands", sess.Commands())
	}()

	if err := s.write(conn, Response{
		Session: sess.ID,
		Blocks:  render.Views(sess.Blocks()),
	}); err != nil {
		return
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("read", "error", err)
			}
			return
		}
		if err := s.write(conn, handle(ctx, sess, req)); err != nil {
			logger.Debug("write", "error", err)
			return
		}
	}
}

func handle(ctx context.Context, sess *session.Session, req Request) Response {
	res := Response{
		Session: sess.ID,
	}
	output, err := sess.Execute(ctx, req.Command)
	if err != nil {
		res.Error = session.ErrorText(err)
	}
	res.Output = output.Text
	res.Clear = output.Clear
	res.SideEffect = output.SideEffect
	if output.SideEffect {
		res.Blocks = render.Views(output.Blocks)
	}
	return res
}

func (s *Server) write(conn *websocket.Conn, res Response) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(res)
}
