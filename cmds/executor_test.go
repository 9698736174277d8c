package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var size int
	executor.Define("-default-size", Func(func() {
		size = 50
	}))
	executor.Define("-memory-size", Func(func(i int) {
		size = i
	}))

	if err := executor.Execute([]string{
		"-default-size",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 50 {
		t.Fatalf("got %v", size)
	}

	if err := executor.Execute([]string{
		"-memory-size", "10",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 10 {
		t.Fatalf("got %v", size)
	}

	if err := executor.Execute([]string{
		"-memory-size=20",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 20 {
		t.Fatalf("got %v", size)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-size",
	})
	if err == nil || !strings.Contains(err.Error(), "did you mean -default-size or -memory-size") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-memory-size", "ten",
	})
	if err == nil || !strings.Contains(err.Error(), "-memory-size: convert ten to int") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("serve", Func(func() {}))
	func() {
		defer func() {
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("serve", Func(func() {}))
	}()
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var served bool
	var max int
	executor.Define("serve", Sub(map[string]*Command{
		"-verbose": Func(func() {
			served = true
		}),
		"-max-sessions": Func(func(i int) {
			max = i
		}),
	}))

	if err := executor.Execute([]string{
		"serve",
		"-verbose",
		"-max-sessions", "4",
	}); err != nil {
		t.Fatal(err)
	}
	if !served {
		t.Fatal("should set")
	}
	if max != 4 {
		t.Fatalf("got %v", max)
	}

	// sub commands are not visible before their parent
	if err := executor.Execute([]string{"-verbose"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("-script", Func(func(path *string, repeat *int) {
		s = *path
		n = *repeat
	}))

	if err := executor.Execute([]string{"-script", "a.star", "3"}); err != nil {
		t.Fatal(err)
	}
	if s != "a.star" || n != 3 {
		t.Fatalf("got %v %v", s, n)
	}

	if err := executor.Execute([]string{"-script", "b.star"}); err != nil {
		t.Fatal(err)
	}
	if s != "b.star" || n != 0 {
		t.Fatalf("got %v %v", s, n)
	}

	if err := executor.Execute([]string{"-script"}); err != nil {
		t.Fatal(err)
	}
	if s != "" || n != 0 {
		t.Fatalf("got %v %v", s, n)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); err != errFoo {
		t.Fatalf("got %v", err)
	}
}

type fooError struct{}

func (fooError) Error() string {
	return "foo"
}

var errFoo error = fooError{}
