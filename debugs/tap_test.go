package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/memsim/logs"
	"github.com/reusee/memsim/memory"
	"github.com/reusee/memsim/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the REPL returns at EOF
		tap(t.Context(), "test", map[string]any{
			"method": memory.BestFit,
			"size":   42,
		})
	})
}

func TestToStringDict(t *testing.T) {
	dict := toStringDict(map[string]any{
		"method": memory.BestFit,
		"sizes":  []int{1, 2},
	})
	if s := dict["method"].String(); s != `"best fit"` {
		t.Fatalf("got %v", s)
	}
	if s := dict["sizes"].String(); s != "[1, 2]" {
		t.Fatalf("got %v", s)
	}
}
