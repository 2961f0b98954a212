// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/prefs"
	"github.com/dkovalev/go-db-console/internal/utils"
)

// getSettings returns the effective settings of the authenticated user for
// the requested server: defaults, site configuration and the user's overlay,
// merged in that order.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	s := h.newSession(w, r)

	if err := s.manager.Apply(r.Context(), s.rc, s.userID, prefs.ResolutionFull); err != nil {
		log.Err(err).Msg("error resolving preference overlay")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	effective := s.resolver.Effective()
	// credentials never leave the server process
	for i := range effective.Servers {
		effective.Servers[i].Password = ""
		effective.Servers[i].ControlPassword = ""
	}

	utils.WriteJSON(w, settingsResponse{
		Settings:    effective,
		ServerIndex: s.resolver.ServerIndex(),
		Secure:      s.rc.Secure(),
		RootPath:    s.rc.RootPath(),
	}, http.StatusOK)
}

// putSetting persists one user setting override. The body carries the new
// value and an optional explicit baseline; persistence faults come back in
// the response instead of failing the request.
func (h *Handler) putSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	s := h.newSession(w, r)

	path := chi.URLParam(r, "path")

	var body putSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("error decoding setting payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.manager.Apply(r.Context(), s.rc, s.userID, prefs.ResolutionMinimal); err != nil {
		log.Err(err).Msg("error resolving preference overlay")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	diag := s.manager.SetUserValue(r.Context(), s.rc, s.userID, body.Cookie, path, body.Value, body.Baseline)
	if diag != nil && errors.Is(diag, config.ErrUnknownSettingPath) {
		log.Err(diag).Msg("unknown setting path")
		http.Error(w, diag.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := putSettingResponse{Path: path}
	resp.Value, _ = s.resolver.EffectiveValue(path)
	if diag != nil {
		log.Err(diag).Msg("setting not persisted")
		resp.Diagnostic = diag.Error()
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

type settingsResponse struct {
	Settings    config.Settings `json:"settings"`
	ServerIndex int             `json:"server_index"`
	Secure      bool            `json:"secure"`
	RootPath    string          `json:"root_path"`
}

type putSettingRequest struct {
	// Value is the new setting value.
	Value any `json:"value"`

	// Baseline overrides the store-or-delete reference; nil falls back to
	// the compiled-in default.
	Baseline any `json:"baseline,omitempty"`

	// Cookie optionally names a cookie mirroring the value.
	Cookie string `json:"cookie,omitempty"`
}

type putSettingResponse struct {
	Path       string `json:"path"`
	Value      any    `json:"value"`
	Diagnostic string `json:"diagnostic,omitempty"`
}
