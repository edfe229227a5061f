// Package urlx parses request URLs into the scheme/host/security-origin
// triple the normalized model carries. Hosts go through IDNA mapping so
// unicode and punycode spellings of the same origin compare equal.
package urlx

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"github.com/crimson-sun/tracelens/pkg/netrecord"
)

// Parse decomposes a raw URL. ok is false when the URL does not parse or
// has no scheme; callers drop such requests rather than treating them as
// errors.
func Parse(raw string) (p netrecord.ParsedURL, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return netrecord.ParsedURL{}, false
	}

	p.Scheme = strings.ToLower(u.Scheme)
	p.Host = NormalizeHost(u.Hostname())
	p.SecurityOrigin = securityOrigin(u, p.Scheme, p.Host)
	return p, true
}

// NormalizeHost lowercases a host and maps internationalized names to
// their ASCII (punycode) form. Hosts that fail IDNA mapping are returned
// lowercased, unmapped.
func NormalizeHost(host string) string {
	host = strings.ToLower(host)
	if host == "" {
		return host
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}

// securityOrigin computes the origin string for a parsed URL. Opaque
// schemes (data:, about:, javascript:) have no authority and get the
// serialized null origin.
func securityOrigin(u *url.URL, scheme, host string) string {
	if host == "" {
		return "null"
	}
	if strings.Contains(host, ":") {
		// IPv6 literal: url.Hostname strips the brackets.
		host = "[" + host + "]"
	}
	origin := scheme + "://" + host
	if port := u.Port(); port != "" {
		origin += ":" + port
	}
	return origin
}
