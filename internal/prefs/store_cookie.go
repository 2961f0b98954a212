// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package prefs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/request"
)

// OverlayCookie is the logical name of the cookie carrying a cookie-backed
// overlay document.
const OverlayCookie = "db_console_config"

// CookieStore keeps the overlay document in a single cookie, base64-encoded
// JSON. It serves sessions that have no configuration storage; the userID
// arguments of [Store] are accepted and ignored, a cookie already belongs
// to exactly one browser session.
type CookieStore struct {
	rc     *request.Context
	name   string
	logger *logger.Logger
}

// NewCookieStore constructs a [CookieStore] bound to one request context.
func NewCookieStore(rc *request.Context, log *logger.Logger) *CookieStore {
	return &CookieStore{rc: rc, name: OverlayCookie, logger: log}
}

// Kind implements [Store].
func (s *CookieStore) Kind() StorageKind {
	return StorageCookie
}

// Load implements [Store]. An absent or unparseable cookie yields an empty
// overlay; a corrupt cookie is a user-side artifact, not a server fault.
func (s *CookieStore) Load(_ context.Context, _ int64) (Overlay, error) {
	raw, ok := s.rc.GetCookie(s.name)
	if !ok {
		return Overlay{Storage: StorageCookie, Loaded: time.Now()}, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding undecodable preference cookie")
		return Overlay{Storage: StorageCookie, Loaded: time.Now()}, nil
	}

	overlay, err := decodeOverlay(data)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding malformed preference cookie")
		return Overlay{Storage: StorageCookie, Loaded: time.Now()}, nil
	}

	overlay.Storage = StorageCookie
	overlay.Loaded = time.Now()
	return overlay, nil
}

// Apply implements [Store].
func (s *CookieStore) Apply(_ context.Context, _ int64, overlay Overlay) (StorageKind, error) {
	doc := overlayDocument{Server: overlay.Server}
	if options := settingsDocument(overlay.Options); len(options) > 0 {
		doc.Options = options
	}

	if len(doc.Options) == 0 && doc.Server == nil {
		s.rc.RemoveCookie(s.name)
		return StorageCookie, nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return StorageNone, fmt.Errorf("error encoding overlay: %w", err)
	}

	s.rc.SetCookie(s.name, base64.RawURLEncoding.EncodeToString(data), "", request.ConfiguredValidity, true)
	return StorageCookie, nil
}

// PersistOption implements [Store].
func (s *CookieStore) PersistOption(_ context.Context, _ int64, path string, value, baseline any) *Diagnostic {
	var raw []byte
	if encoded, ok := s.rc.GetCookie(s.name); ok {
		if data, err := base64.RawURLEncoding.DecodeString(encoded); err == nil {
			raw = data
		}
	}

	data, hasPayload, err := setDocumentOption(raw, path, value, baseline)
	if err != nil {
		return &Diagnostic{Path: path, Err: err}
	}

	if !hasPayload {
		s.rc.RemoveCookie(s.name)
		return nil
	}

	s.rc.SetCookie(s.name, base64.RawURLEncoding.EncodeToString(data), "", request.ConfiguredValidity, true)
	return nil
}
