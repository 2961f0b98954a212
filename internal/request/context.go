// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package request

import (
	"net/http"
	"path"
	"strings"
	"time"
)

// Context carries the per-request transport facts a handler needs: the
// response writer and inbound request, whether the transport is secure, the
// resolved application root path, and the cookie policy taken from the
// effective settings at construction time.
type Context struct {
	w http.ResponseWriter
	r *http.Request

	secure   bool
	rootPath string

	cookieValidity time.Duration
	cookieSameSite http.SameSite
}

// CookiePolicy is the slice of the effective settings the request layer
// needs. Keeping it a separate value avoids a dependency on the full
// settings schema.
type CookiePolicy struct {
	// Validity is the lifetime of a written cookie. Zero means "session
	// cookie" when passed explicitly per call; here zero falls back to
	// DefaultCookieValidity.
	Validity time.Duration
	// SameSite is the policy name, one of "Strict", "Lax" or "None".
	SameSite string
}

// DefaultCookieValidity applies when no validity is configured.
const DefaultCookieValidity = 30 * 24 * time.Hour

// New derives a request context from the inbound request. Transport security
// and the root path are computed once, here.
func New(w http.ResponseWriter, r *http.Request, policy CookiePolicy) *Context {
	validity := policy.Validity
	if validity == 0 {
		validity = DefaultCookieValidity
	}

	return &Context{
		w:              w,
		r:              r,
		secure:         DetectSecure(r),
		rootPath:       RootPath(r),
		cookieValidity: validity,
		cookieSameSite: parseSameSite(policy.SameSite),
	}
}

// Secure reports whether the request arrived over a secure transport.
func (c *Context) Secure() bool {
	return c.secure
}

// RootPath returns the application base path resolved at construction.
func (c *Context) RootPath() string {
	return c.rootPath
}

// Request returns the inbound request.
func (c *Context) Request() *http.Request {
	return c.r
}

// RootPath derives the application base path from the request URL: the
// directory portion of the path with a trailing slash guaranteed.
func RootPath(r *http.Request) string {
	p := r.URL.Path
	if p == "" {
		return "/"
	}
	if !strings.HasSuffix(p, "/") {
		p = path.Dir(p)
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func parseSameSite(name string) http.SameSite {
	switch strings.ToLower(name) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteStrictMode
	}
}
