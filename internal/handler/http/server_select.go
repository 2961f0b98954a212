// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dkovalev/go-db-console/internal/config"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/prefs"
	"github.com/dkovalev/go-db-console/internal/utils"
)

// selectServer resolves a user-supplied server value to a configured server
// index. Index 0 with an empty descriptor is a valid outcome, never an
// error; it tells the client to render the server choice page.
func (h *Handler) selectServer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	s := h.newSession(w, r)

	var body selectServerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("error decoding server selection payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	idx := s.resolver.SelectServer(body.Server)
	if err := s.manager.Apply(r.Context(), s.rc, s.userID, prefs.ResolutionMinimal); err != nil {
		log.Err(err).Msg("error resolving preference overlay")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	descriptor := s.resolver.Server()
	utils.WriteJSON(w, selectServerResponse{
		ServerIndex: idx,
		Server:      publicServer(descriptor),
	}, http.StatusOK)
}

type selectServerRequest struct {
	Server string `json:"server"`
}

type selectServerResponse struct {
	ServerIndex int          `json:"server_index"`
	Server      serverPublic `json:"server"`
}

// serverPublic is the client-visible slice of a server descriptor.
// Credentials never leave the server process.
type serverPublic struct {
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Socket  string `json:"socket,omitempty"`
	Verbose string `json:"verbose,omitempty"`
	SSL     bool   `json:"ssl"`
}

func publicServer(s config.ServerSettings) serverPublic {
	return serverPublic{
		Host:    s.Host,
		Port:    s.Port,
		Socket:  s.Socket,
		Verbose: s.Verbose,
		SSL:     s.SSL,
	}
}
