package nets

import (
	"context"
	"net"

	"github.com/reusee/memsim/logs"
	"golang.org/x/net/netutil"
)

// Listen opens a TCP listener accepting at most max concurrent connections, unlimited when max < 1.
type Listen func(ctx context.Context, addr string, max int) (net.Listener, error)

func (Module) Listen(
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Listen {
	return func(ctx context.Context, addr string, max int) (net.Listener, error) {
		var lc net.ListenConfig
		ln, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}

		if local, err := isLocalAddr(addr); err != nil {
			ln.Close()
			return nil, err
		} else if !local {
			logger.WarnContext(ctx, "listening on a non-local address", "addr", addr)
		}

		if max > 0 {
			ln = netutil.LimitListener(ln, max)
		}
		logger.InfoContext(ctx, "listen",
			"addr", ln.Addr().String(),
			"max", max,
		)
		return ln, nil
	}
}
