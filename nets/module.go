// Package nets provides the listeners of the session server.
package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/memsim/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
