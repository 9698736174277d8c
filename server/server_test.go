package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/interp"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memconfigs"
	"github.com/reusee/memsim/modes"
	"github.com/reusee/memsim/nets"
	"github.com/reusee/memsim/session"
)

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		new(session.Module),
		new(interp.Module),
		new(memconfigs.Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() memconfigs.ConfigPaths {
			return nil
		},
		func() memconfigs.MemorySize {
			return 10
		},
	)
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.DialContext(t.Context(), url, nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) Response {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	var res Response
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSession(t *testing.T) {
	server := dscope.Get[*Server](newScope(t))
	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + Path

	conn := dial(t, url)
	defer conn.Close()

	hello := readResponse(t, conn)
	if hello.Session == "" {
		t.Fatal("expecting session id")
	}
	if len(hello.Blocks) != 1 || hello.Blocks[0].Length != 10 {
		t.Fatalf("got %+v", hello.Blocks)
	}

	if err := conn.WriteJSON(Request{Command: "int* p = malloc(3)"}); err != nil {
		t.Fatal(err)
	}
	res := readResponse(t, conn)
	if res.Session != hello.Session {
		t.Fatalf("got %s", res.Session)
	}
	if res.Output != "-> 2" || res.Error != "" || !res.SideEffect {
		t.Fatalf("got %+v", res)
	}
	if len(res.Blocks) != 3 || !res.Blocks[1].Allocated || res.Blocks[1].Start != 1 {
		t.Fatalf("got %+v", res.Blocks)
	}

	if err := conn.WriteJSON(Request{Command: "q"}); err != nil {
		t.Fatal(err)
	}
	res = readResponse(t, conn)
	if !strings.Contains(res.Error, "'q' is not defined") || res.SideEffect || len(res.Blocks) != 0 {
		t.Fatalf("got %+v", res)
	}

	if err := conn.WriteJSON(Request{Command: "clearConsole()"}); err != nil {
		t.Fatal(err)
	}
	res = readResponse(t, conn)
	if !res.Clear || res.Output != "" {
		t.Fatalf("got %+v", res)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	server := dscope.Get[*Server](newScope(t))
	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + Path

	c1 := dial(t, url)
	defer c1.Close()
	c2 := dial(t, url)
	defer c2.Close()
	h1 := readResponse(t, c1)
	h2 := readResponse(t, c2)
	if h1.Session == h2.Session {
		t.Fatal("expecting distinct sessions")
	}

	if err := c1.WriteJSON(Request{Command: "int a = 1"}); err != nil {
		t.Fatal(err)
	}
	readResponse(t, c1)

	if err := c2.WriteJSON(Request{Command: "a"}); err != nil {
		t.Fatal(err)
	}
	res := readResponse(t, c2)
	if res.Error == "" {
		t.Fatalf("got %+v", res)
	}
}

func TestListenAndServe(t *testing.T) {
	scope := newScope(t)
	server := dscope.Get[*Server](scope)
	listen := dscope.Get[nets.Listen](scope)

	ctx, cancel := context.WithCancel(t.Context())
	ln, err := listen(ctx, "127.0.0.1:0", 2)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln)
	}()

	conn := dial(t, "ws://"+ln.Addr().String()+Path)
	defer conn.Close()
	readResponse(t, conn)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second * 10):
		t.Fatal("shutdown timeout")
	}

	conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expecting closed connection")
	}
}

func TestRefuseAfterClose(t *testing.T) {
	server := dscope.Get[*Server](newScope(t))
	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + Path

	server.closeAll()

	conn := dial(t, url)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Fatalf("got %v", err)
	}
	server.mu.Lock()
	n := len(server.conns)
	server.mu.Unlock()
	if n != 0 {
		t.Fatalf("got %d", n)
	}
}
