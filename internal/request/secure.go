package request

import (
	"net"
	"net/http"
	"os"
	"strings"
)

// DetectSecure reports whether the inbound request arrived over a secure
// transport. Detection checks, in order: TLS on the connection itself, the
// HTTPS environment hint set by some front servers, the X-Forwarded-Proto
// header, the RFC 7239 Forwarded header, the Front-End-Https and
// X-Forwarded-Ssl load balancer headers, and finally the server port.
//
// Only the first element of a Forwarded chain is consulted; later elements
// describe hops behind the client-facing proxy.
func DetectSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	if v := os.Getenv("HTTPS"); v != "" && !strings.EqualFold(v, "off") && v != "0" {
		return true
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); strings.EqualFold(proto, "https") {
		return true
	}

	if proto := forwardedProto(r.Header.Get("Forwarded")); strings.EqualFold(proto, "https") {
		return true
	}

	if v := r.Header.Get("Front-End-Https"); strings.EqualFold(v, "on") {
		return true
	}
	if v := r.Header.Get("X-Forwarded-Ssl"); strings.EqualFold(v, "on") {
		return true
	}

	if _, port, err := net.SplitHostPort(r.Host); err == nil && port == "443" {
		return true
	}

	return false
}

// forwardedProto extracts the proto parameter from the first element of an
// RFC 7239 Forwarded header value.
func forwardedProto(header string) string {
	if header == "" {
		return ""
	}

	first, _, _ := strings.Cut(header, ",")
	for _, pair := range strings.Split(first, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "proto") {
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
	}

	return ""
}
