// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package prefs

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/prefs_mock.go -package=mock

// Store is the durable backing of a user preference overlay.
//
// Absent preferences are a normal condition: Load returns an empty overlay
// with a nil error when the user has nothing stored. PersistOption never
// fails hard; write faults come back as a Diagnostic so the caller decides
// whether to warn the user.
type Store interface {
	// Load reads the stored overlay of one user.
	Load(ctx context.Context, userID int64) (Overlay, error)

	// Apply replaces the stored overlay of one user wholesale and reports
	// which channel it was written to.
	Apply(ctx context.Context, userID int64, overlay Overlay) (StorageKind, error)

	// PersistOption writes one setting override. The stored key is removed
	// when value equals baseline, so a value reset to its default leaves no
	// explicit override behind.
	PersistOption(ctx context.Context, userID int64, path string, value, baseline any) *Diagnostic

	// Kind reports the channel this store writes to.
	Kind() StorageKind
}

// ThemeRegistry is the theme collaborator: existence checks and activation
// by identifier.
type ThemeRegistry interface {
	Exists(id string) bool
	Activate(id string) error
}

// LanguageRegistry is the display language collaborator.
type LanguageRegistry interface {
	Exists(id string) bool
	Activate(id string) error
}

// CollationConnection exposes the connection collation of the active
// backend connection.
type CollationConnection interface {
	Collation(ctx context.Context) (string, error)
	SetCollation(ctx context.Context, collation string) error
}
