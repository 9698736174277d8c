package repl

import (
	"slices"
	"testing"
)

func TestPredictions(t *testing.T) {
	r, _ := newREPL(t)
	r.Handle(t.Context(), "int count = 1")
	predictions := Predictions(r.Session().Interpreter())
	for _, expected := range []string{
		"count",
		"malloc(",
		"free(",
		"freeAll()",
		"help()",
	} {
		if !slices.Contains(predictions, expected) {
			t.Fatalf("missing %s in %v", expected, predictions)
		}
	}
	if !slices.IsSorted(predictions) {
		t.Fatalf("got %v", predictions)
	}
}

func TestComplete(t *testing.T) {
	r, _ := newREPL(t)
	r.Handle(t.Context(), "int count = 1")
	i := r.Session().Interpreter()
	for src, expected := range map[string]string{
		"mal":          "malloc(",
		"int* p = mal": "int* p = malloc(",
		"free(cou":     "free(count",
		"fre":          "free(",
		"freeA":        "freeAll()",
		"":             "",
		"free(":        "free(",
		"zzz":          "zzz",
	} {
		if got := Complete(i, src); got != expected {
			t.Fatalf("%q: got %q", src, got)
		}
	}
}

func TestCompleterDo(t *testing.T) {
	r, _ := newREPL(t)
	c := completer{
		interpreter: r.Session().Interpreter,
	}

	line := []rune("set")
	suffixes, length := c.Do(line, len(line))
	if length != 3 {
		t.Fatalf("got %d", length)
	}
	var got []string
	for _, s := range suffixes {
		got = append(got, string(s))
	}
	if !slices.Equal(got, []string{"AllocationMethod(", "MemorySize("}) {
		t.Fatalf("got %v", got)
	}

	line = []rune(".st")
	suffixes, length = c.Do(line, len(line))
	if length != 3 || len(suffixes) != 1 || string(suffixes[0]) != "ats" {
		t.Fatalf("got %v %d", suffixes, length)
	}

	line = []rune("malloc(")
	suffixes, _ = c.Do(line, len(line))
	if len(suffixes) != 0 {
		t.Fatalf("got %v", suffixes)
	}
}
