package nets

import "net"

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// The analysis backend usually runs next to the console and must bypass any proxy.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}

		if ip := net.ParseIP(host); ip != nil {
			return isLocalIP(ip), nil
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unknown hosts go through the proxy
			return false, nil
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true, nil
			}
		}

		return false, nil
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}
