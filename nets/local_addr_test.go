package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/memsim/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:8080":  true,
			"[::1]:8080":      true,
			"localhost:9000":  true,
			"192.168.1.2:80":  true,
			"10.0.0.1":        true,
			":8080":           false,
			"0.0.0.0:8080":    false,
			"8.8.8.8:53":      false,
			"[2001:db8::1]:1": false,
		} {
			got, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != expected {
				t.Fatalf("%s: got %v", addr, got)
			}
		}
	})
}
