// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

// Package prefs implements the user preference overlay: per-user, per-server
// setting overrides loaded from durable storage or from a cookie and merged
// over the effective settings of a request's resolver.
//
// The package separates the overlay lifecycle (Manager) from its storage
// (Store implementations). A Manager caches loaded overlays keyed by server
// index and invalidates them when the site configuration file changes.
package prefs
