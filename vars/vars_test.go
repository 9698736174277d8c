package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"n":     false,
		"":      false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 30, 50); n != 30 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", "", "first fit"); s != "first fit" {
		t.Fatalf("got %v", s)
	}
	if n := FirstNonZero[int](); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestDerefOrZero(t *testing.T) {
	if n := DerefOrZero[int](nil); n != 0 {
		t.Fatalf("got %v", n)
	}
	n := 42
	if got := DerefOrZero(&n); got != 42 {
		t.Fatalf("got %v", got)
	}
}
