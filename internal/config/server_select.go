// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// SelectServer resolves a user-supplied value from request input to a
// configured server index and makes that server the active one.
//
// Numeric input is parsed as an integer; zero or negative collapses to 0,
// "no preference". Non-numeric input is matched in declared order against
// each server's host, its verbose label (exact, then case-insensitive), and
// the case-insensitive MD5 hex digest of the verbose label; the digest rule
// keeps obfuscated bookmark links working. First match wins.
//
// When no match is found the configured default server index applies if it
// exists, otherwise the result is 0. Index 0 is a valid outcome, never an
// error: it clears the active descriptor so a server choice page can render.
func (r *Resolver) SelectServer(raw string) int {
	idx := r.matchServer(raw)

	if idx == 0 {
		if d := r.effective.ServerDefault; d >= 1 && d <= len(r.effective.Servers) {
			idx = d
		}
	}

	r.serverIndex = idx
	if idx == 0 {
		// never reuse a stale descriptor
		r.server = ServerSettings{}
	} else {
		r.server = r.effective.Servers[idx-1].Clone()
	}

	return idx
}

// ServerIndex returns the 1-based index of the active server, 0 when none
// is selected.
func (r *Resolver) ServerIndex() int {
	return r.serverIndex
}

// Server returns a copy of the active server descriptor. The descriptor is
// empty when no server is selected.
func (r *Resolver) Server() ServerSettings {
	return r.server.Clone()
}

func (r *Resolver) matchServer(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n >= 1 && n <= len(r.effective.Servers) {
			return n
		}
		return 0
	}

	// Label matching mixes three strategies in one declared-order pass:
	// host, verbose label, hashed verbose label. First match wins; there is
	// no precedence between strategies beyond server order.
	for i, srv := range r.effective.Servers {
		if srv.Host == raw {
			return i + 1
		}
		if srv.Verbose == raw || strings.EqualFold(srv.Verbose, raw) {
			return i + 1
		}
		if srv.Verbose != "" && strings.EqualFold(labelDigest(srv.Verbose), raw) {
			return i + 1
		}
	}

	return 0
}

func labelDigest(label string) string {
	sum := md5.Sum([]byte(label))
	return hex.EncodeToString(sum[:])
}
