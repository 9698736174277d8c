package nets

import (
	"net"
	"strings"
)

// IsLocalAddr reports whether addr is reachable only from the local host or a private network.
// An empty host means all interfaces and is not local.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}
		host = strings.Trim(host, "[]")
		if host == "" {
			return false, nil
		}
		if host == "localhost" {
			return true, nil
		}

		ips := []net.IP{net.ParseIP(host)}
		if ips[0] == nil {
			ips, err = net.LookupIP(host)
			if err != nil {
				return false, nil
			}
		}

		for _, ip := range ips {
			if ip.IsUnspecified() {
				return false, nil
			}
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}
		return false, nil
	}
}
