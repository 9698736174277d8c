package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/memsim/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("malloc", "size", 3, "pointer", 2)
		if !strings.Contains(buf.String(), "msg=malloc size=3 pointer=2") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestSetLevel(t *testing.T) {
	defer level.Set(level.Level())
	if err := SetLevel("error"); err != nil {
		t.Fatal(err)
	}
	if Level() != slog.LevelError {
		t.Fatalf("got %v", Level())
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatal("should error")
	}
	if err := SetLevel(""); err != nil {
		t.Fatal(err)
	}
	if Level() != slog.LevelError {
		t.Fatalf("got %v", Level())
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %v", key)
	}
}

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")
	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
}
