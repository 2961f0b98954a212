// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package request

import (
	"net/http"
	"time"
)

// ConfiguredValidity selects the validity configured in the cookie policy
// instead of an explicit per-call lifetime.
const ConfiguredValidity time.Duration = -1

// WireName maps a logical cookie name to its on-the-wire name. Under a
// secure transport the name gains the __Secure- prefix and an _https suffix,
// so the secure and insecure variants of one logical cookie never collide in
// the browser's store.
func (c *Context) WireName(name string) string {
	if c.secure {
		return "__Secure-" + name + "_https"
	}
	return name
}

// SetCookie writes, rewrites or deletes one logical cookie.
//
// Elision rules, checked in order against the inbound request's cookie
// store:
//   - value equals a non-empty defaultValue: the cookie is deleted if
//     present, nothing is stored;
//   - value is empty and the cookie is present: the cookie is deleted;
//   - value equals the currently stored value: no write happens, the call
//     still reports success;
//   - otherwise the cookie is written.
//
// validity selects the lifetime of a written cookie: [ConfiguredValidity]
// uses the policy value, zero writes a session cookie, any positive duration
// expires at now+validity. The freshness check reads the inbound store, not
// cookies written earlier in this response.
func (c *Context) SetCookie(name, value, defaultValue string, validity time.Duration, httpOnly bool) bool {
	if defaultValue != "" && value == defaultValue {
		if c.IssetCookie(name) {
			c.RemoveCookie(name)
		}
		return true
	}

	if value == "" && c.IssetCookie(name) {
		c.RemoveCookie(name)
		return true
	}

	if current, ok := c.GetCookie(name); ok && current == value {
		return true
	}

	if validity == ConfiguredValidity {
		validity = c.cookieValidity
	}

	cookie := &http.Cookie{
		Name:     c.WireName(name),
		Value:    value,
		Path:     c.rootPath,
		Secure:   c.secure,
		HttpOnly: httpOnly,
		SameSite: c.cookieSameSite,
	}
	if validity > 0 {
		cookie.Expires = time.Now().Add(validity)
	}

	http.SetCookie(c.w, cookie)
	return true
}

// Set stores a cookie with the configured validity and HttpOnly set.
func (c *Context) Set(name, value string) bool {
	return c.SetCookie(name, value, "", ConfiguredValidity, true)
}

// RemoveCookie deletes the cookie by writing an expired replacement.
func (c *Context) RemoveCookie(name string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.WireName(name),
		Value:    "",
		Path:     c.rootPath,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: c.cookieSameSite,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// GetCookie returns the stored value of the logical cookie from the inbound
// request, reporting false when absent.
func (c *Context) GetCookie(name string) (string, bool) {
	cookie, err := c.r.Cookie(c.WireName(name))
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// IssetCookie reports whether the logical cookie is present on the inbound
// request.
func (c *Context) IssetCookie(name string) bool {
	_, ok := c.GetCookie(name)
	return ok
}
