// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

// ConnectionKind selects which connection a descriptor is derived for.
type ConnectionKind int

const (
	// ConnectionUser is the primary connection opened on behalf of the
	// signed-in user.
	ConnectionUser ConnectionKind = iota
	// ConnectionControl is the secondary administrative connection used for
	// internal bookkeeping (preference storage, metadata).
	ConnectionControl
)

// ConnectionParams derives connection parameters for the given kind from a
// server descriptor.
//
// For [ConnectionUser] the descriptor is returned unchanged when both host
// and port are set; otherwise an empty host is filled with "localhost" and
// an empty port stays zero.
//
// For [ConnectionControl] a descriptor is built from the Control* fields.
// When the control host equals the primary host, SSL, socket, compression
// and error-visibility settings are inherited from the primary descriptor as
// a baseline; explicitly configured Control* fields then override the
// baseline field by field. The host falls back to "localhost" when still
// empty after all steps.
func ConnectionParams(srv ServerSettings, kind ConnectionKind) ServerSettings {
	if kind == ConnectionControl {
		return controlParams(srv)
	}

	if srv.Host != "" && srv.Port != 0 {
		return srv.Clone()
	}

	out := srv.Clone()
	if out.Host == "" {
		out.Host = "localhost"
		out.Port = 0
	}
	return out
}

func controlParams(srv ServerSettings) ServerSettings {
	ctl := ServerSettings{
		Host:     srv.ControlHost,
		Port:     srv.ControlPort,
		Socket:   srv.ControlSocket,
		User:     srv.ControlUser,
		Password: srv.ControlPassword,
	}

	if srv.ControlHost != "" && srv.ControlHost == srv.Host {
		// same machine: the primary connection settings are the baseline
		ctl.SSL = srv.SSL
		ctl.Compress = srv.Compress
		ctl.HideConnectionErrors = srv.HideConnectionErrors
		if ctl.Socket == "" {
			ctl.Socket = srv.Socket
		}
		if ctl.Port == 0 {
			ctl.Port = srv.Port
		}
	}

	if srv.ControlSSL != nil {
		ctl.SSL = *srv.ControlSSL
	}
	if srv.ControlCompress != nil {
		ctl.Compress = *srv.ControlCompress
	}
	if srv.ControlHideConnectionErrors != nil {
		ctl.HideConnectionErrors = *srv.ControlHideConnectionErrors
	}

	if ctl.Host == "" {
		ctl.Host = "localhost"
	}

	return ctl
}
