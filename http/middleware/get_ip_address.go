package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/rest"
)

const unknownIP = "0.0.0.0"

var proxyHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// Non-public IPv4 blocks as registered with IANA.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the client address in the request context under rest.IpAddrKey.
// A public address from the proxy headers wins over the host of RemoteAddr.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r.Header)
			if ip == unknownIP {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					ip = host
				}
			}

			h.ServeHTTP(w, r.Clone(context.WithValue(r.Context(), rest.IpAddrKey, ip)))
		})
	}
}

// GetIPAddress returns the public address nearest our proxy in "X-Forwarded-For",
// then "X-Real-Ip", scanning each list from the right.
// Without one it returns "0.0.0.0".
func GetIPAddress(hm http.Header) string {
	for _, name := range proxyHeaders {
		hops := strings.Split(hm.Get(name), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	return unknownIP
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() {
		return false
	}

	for _, p := range privatePrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}

// clientIP prefers the address InjectIPAddress stored over reparsing the headers.
func clientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(rest.IpAddrKey).(string); ok && ip != "" {
		return ip
	}

	return GetIPAddress(r.Header)
}
