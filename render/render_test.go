package render

import (
	"math"
	"strings"
	"testing"

	"github.com/reusee/memsim/interp"
	"github.com/reusee/memsim/memory"
	"go.yaml.in/yaml/v3"
)

func TestResult(t *testing.T) {
	for expected, res := range map[string]interp.Result{
		"-> 2": {
			Variable: interp.Variable{Type: interp.TypeInt, Value: int64(2)},
		},
		"-> null": {
			Variable: interp.Variable{Type: interp.TypeInt},
		},
		"-> 3.5": {
			Variable: interp.Variable{Type: interp.TypeDouble, Value: 3.5},
		},
		"-> worst fit": {
			Variable: interp.Variable{Type: interp.TypeString, Value: "worst fit"},
		},
		"-> c": {
			Variable: interp.Variable{Type: interp.TypeChar, Value: 'c'},
		},
		"-> [function malloc]": {
			Variable: interp.Variable{Type: interp.TypeFunction, Value: interp.BuiltinMalloc},
		},
		"": {
			Kind:   interp.ResultUIAction,
			Action: interp.ActionClearConsole,
		},
	} {
		if got := Result(res); got != expected {
			t.Fatalf("got %q, expecting %q", got, expected)
		}
	}
}

func TestDouble(t *testing.T) {
	for f, expected := range map[float64]string{
		3.5:          "3.5",
		0:            "0",
		100000000:    "100000000",
		1e21:         "1e+21",
		0.1:          "0.1",
		-2.25:        "-2.25",
		math.Inf(1):  "Infinity",
		math.Inf(-1): "-Infinity",
	} {
		if got := Double(f); got != expected {
			t.Fatalf("%v: got %q", f, got)
		}
	}
	if got := Double(math.NaN()); got != "NaN" {
		t.Fatalf("got %q", got)
	}
}

func newAllocator(t *testing.T, size int) *memory.Allocator {
	t.Helper()
	a, err := memory.New(size, memory.FirstFit)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestMemory(t *testing.T) {
	a := newAllocator(t, 10)
	if _, err := a.Allocate(3); err != nil {
		t.Fatal(err)
	}
	got := Memory(a.Snapshot())
	if got != "[.][####][.....]\n 0" {
		t.Fatalf("got %q", got)
	}

	a = newAllocator(t, 25)
	got = Memory(a.Snapshot())
	expected := "[" + strings.Repeat(".", 25) + "]\n" +
		" 0" + strings.Repeat(" ", 9) + "10" + strings.Repeat(" ", 8) + "20"
	if got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestStats(t *testing.T) {
	a := newAllocator(t, 20)
	for _, size := range []int{3, 2} {
		if _, err := a.Allocate(size); err != nil {
			t.Fatal(err)
		}
	}
	stats := NewStats(a.Snapshot())
	if stats.Cells != 20 || stats.Used != 7 || stats.Free != 13 {
		t.Fatalf("got %+v", stats)
	}
	// the sentinel block and the tail
	if stats.FreeChunks != 2 || stats.LargestFree != 12 {
		t.Fatalf("got %+v", stats)
	}
	if s := stats.String(); s != "cells=20 used=7 free=13 free_chunks=2 largest_free=12" {
		t.Fatalf("got %v", s)
	}

	a.ReleaseAll()
	a.Coalesce()
	stats = NewStats(a.Snapshot())
	if stats.Used != 0 || stats.FreeChunks != 1 || stats.LargestFree != 20 {
		t.Fatalf("got %+v", stats)
	}
}

func TestYAML(t *testing.T) {
	a := newAllocator(t, 10)
	if _, err := a.Allocate(3); err != nil {
		t.Fatal(err)
	}
	out, err := YAML(a.Snapshot(), "first fit")
	if err != nil {
		t.Fatal(err)
	}
	var snapshot yamlSnapshot
	if err := yaml.Unmarshal(out, &snapshot); err != nil {
		t.Fatal(err)
	}
	if snapshot.Method != "first fit" {
		t.Fatalf("got %v", snapshot.Method)
	}
	if len(snapshot.Blocks) != 3 {
		t.Fatalf("got %s", out)
	}
	if b := snapshot.Blocks[1]; b.Start != 1 || b.Length != 4 || !b.Allocated || b.Next != 5 {
		t.Fatalf("got %+v", b)
	}
	if b := snapshot.Blocks[2]; b.Next != memory.NoBoundary {
		t.Fatalf("got %+v", b)
	}
	if snapshot.Stats.Used != 4 {
		t.Fatalf("got %+v", snapshot.Stats)
	}
}
