// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/dkovalev/go-db-console/internal/config"
)

// StorageKind names the channel an overlay was loaded from or written to.
type StorageKind string

const (
	// StorageNone marks an overlay that has no durable backing.
	StorageNone StorageKind = ""
	// StorageDB marks a database-backed overlay.
	StorageDB StorageKind = "db"
	// StorageCookie marks a cookie-backed overlay.
	StorageCookie StorageKind = "cookie"
)

// Overlay is one user's preference record for one backend server: a partial
// settings record, an optional partial server descriptor, and metadata about
// where and when it was loaded.
type Overlay struct {
	// Options carries the setting overrides. Zero fields inherit the layer
	// below.
	Options config.Settings

	// Server carries per-server descriptor overrides, nil when none exist.
	Server *config.ServerOverride

	// Storage is the channel that produced this overlay.
	Storage StorageKind

	// Loaded is the time the overlay was read from its store. The manager
	// compares it against the site configuration mtime for invalidation.
	Loaded time.Time
}

// overlayDocument is the wire schema of a stored overlay. Option keys use
// the settings wire names, so a stored override round-trips unchanged.
type overlayDocument struct {
	Options map[string]any         `json:"options,omitempty"`
	Server  *config.ServerOverride `json:"server,omitempty"`
}

// decodeOverlay parses a stored overlay document. The option map is pushed
// through the settings schema so unknown or mistyped keys are dropped with
// an error instead of surviving as untyped data.
func decodeOverlay(data []byte) (Overlay, error) {
	if len(data) == 0 {
		return Overlay{}, nil
	}

	var doc overlayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Overlay{}, fmt.Errorf("%w: %w", ErrOverlayDecode, err)
	}

	var options config.Settings
	for path, value := range doc.Options {
		if err := options.SetValue(path, value); err != nil {
			return Overlay{}, fmt.Errorf("%w: %w", ErrOverlayDecode, err)
		}
	}

	return Overlay{Options: options, Server: doc.Server}, nil
}

// setDocumentOption applies one store-or-delete decision to a raw overlay
// document: when value equals baseline the key is removed, otherwise it is
// written. Returns the updated document and whether it still carries any
// payload.
func setDocumentOption(data []byte, path string, value, baseline any) ([]byte, bool, error) {
	var doc overlayDocument
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrOverlayDecode, err)
		}
	}
	if doc.Options == nil {
		doc.Options = make(map[string]any)
	}

	if equalValues(value, baseline) {
		delete(doc.Options, path)
	} else {
		doc.Options[path] = value
	}

	empty := len(doc.Options) == 0 && doc.Server == nil
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, false, err
	}
	return out, !empty, nil
}

// settingsDocument flattens the non-zero user-settable fields of a partial
// settings record into a wire document. Zero fields mean "inherit" and are
// never stored.
func settingsDocument(s config.Settings) map[string]any {
	doc := make(map[string]any)
	for _, path := range config.UserSettablePaths() {
		value, ok := s.Value(path)
		if !ok {
			continue
		}
		if reflect.ValueOf(value).IsZero() {
			continue
		}
		doc[path] = value
	}
	return doc
}

// equalValues compares two dynamically typed setting values through their
// JSON form, so 25 and float64(25) compare equal the way they do on the
// wire.
func equalValues(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
