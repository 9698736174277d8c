package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("serve", Sub(map[string]*Command{
		"-verbose": Func(func() {
		}).Desc("VERBOSE"),
		"tls": Sub(map[string]*Command{
			"-cert": Func(func(path string) {}).Desc("CERT"),
		}).Desc("TLS"),
	}).Desc("SERVE"))
	executor.Define("-limit", Func(func(n *int) {}))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()

	for _, expected := range []string{
		"  -h, help, -help, --help\tprint this usage",
		"  serve\tSERVE",
		"    -verbose\tVERBOSE",
		"    tls\tTLS",
		"      -cert <string>\tCERT",
		"  -limit [int]",
	} {
		if !strings.Contains(out, expected+"\n") {
			t.Fatalf("expecting %q in %s", expected, out)
		}
	}
	if strings.Contains(out, "  help") {
		t.Fatalf("aliases should be folded: %s", out)
	}
}
