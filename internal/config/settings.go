// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

import "time"

// Settings is the typed settings record consumed by the request pipeline.
// It is assembled by the [Resolver] from compiled-in defaults, the site
// configuration file, and per-user preference overrides, merged in that
// order with last-writer-wins semantics.
//
// Fields that need an explicit "unset" state (so an override layer can turn
// them off) are pointer-typed; nil means "inherit from the layer below".
type Settings struct {
	// ServerDefault is the 1-based index of the backend server selected when
	// the request names none. Zero means "no preference": the server choice
	// page is rendered instead.
	ServerDefault int `json:"server_default"`

	// ThemeDefault is the identifier of the theme activated when neither the
	// user overlay nor a cookie names one.
	ThemeDefault string `json:"theme_default"`

	// DefaultLang is the display language identifier used when the user has
	// not chosen one.
	DefaultLang string `json:"default_lang"`

	// DefaultConnectionCollation is the collation applied to a freshly opened
	// backend connection when it differs from the connection's own.
	DefaultConnectionCollation string `json:"default_connection_collation"`

	// MaxRows is the number of result rows shown per page.
	MaxRows int `json:"max_rows"`

	// TempDir is the base directory for writable scratch space. Subdirectories
	// are resolved and cached via [Resolver.TempDir].
	TempDir string `json:"temp_dir"`

	// CheckConfigPermissions enables the group/world-writable check on the
	// site configuration file. Pointer-typed so the site file can disable it.
	CheckConfigPermissions *bool `json:"check_config_permissions"`

	// CookieSameSite is the SameSite policy applied to every cookie written
	// by the application: "Strict", "Lax" or "None".
	CookieSameSite string `json:"cookie_same_site"`

	// CookieValidity is the default lifetime of a written cookie when the
	// caller does not supply one.
	CookieValidity time.Duration `json:"cookie_validity"`

	// Servers is the list of configured backend server descriptors. Indexes
	// exposed to the rest of the application are 1-based; 0 denotes "no
	// server selected".
	Servers []ServerSettings `json:"servers"`
}

// ServerSettings describes one configured backend database server.
//
// The Control* fields describe the secondary administrative connection used
// for internal bookkeeping (preference storage, metadata). Control booleans
// are pointer-typed: nil means "not explicitly configured", which lets
// [ConnectionParams] inherit the primary connection's value.
type ServerSettings struct {
	Host                 string `json:"host"`
	Port                 int    `json:"port"`
	Socket               string `json:"socket"`
	Verbose              string `json:"verbose"`
	User                 string `json:"user"`
	Password             string `json:"password"`
	SSL                  bool   `json:"ssl"`
	Compress             bool   `json:"compress"`
	HideConnectionErrors bool   `json:"hide_connection_errors"`

	ControlHost                 string `json:"control_host"`
	ControlPort                 int    `json:"control_port"`
	ControlSocket               string `json:"control_socket"`
	ControlUser                 string `json:"control_user"`
	ControlPassword             string `json:"control_password"`
	ControlSSL                  *bool  `json:"control_ssl"`
	ControlCompress             *bool  `json:"control_compress"`
	ControlHideConnectionErrors *bool  `json:"control_hide_connection_errors"`
}

// DefaultSettings returns the compiled-in settings record. It is built fresh
// on every call so callers can never alias the defaults of another resolver.
func DefaultSettings() Settings {
	checkPermissions := true

	return Settings{
		ServerDefault:              0,
		ThemeDefault:               "pmahomme",
		DefaultLang:                "en",
		DefaultConnectionCollation: "utf8mb4_general_ci",
		MaxRows:                    25,
		TempDir:                    "./tmp",
		CheckConfigPermissions:     &checkPermissions,
		CookieSameSite:             "Strict",
		CookieValidity:             30 * 24 * time.Hour,
		Servers:                    nil,
	}
}

// Clone returns a deep copy of the settings record. Slices and pointer fields
// are duplicated so mutating the copy never leaks into the original.
func (s Settings) Clone() Settings {
	out := s
	out.CheckConfigPermissions = cloneBool(s.CheckConfigPermissions)

	if s.Servers != nil {
		out.Servers = make([]ServerSettings, len(s.Servers))
		for i, srv := range s.Servers {
			out.Servers[i] = srv.Clone()
		}
	}

	return out
}

// Clone returns a deep copy of the server descriptor.
func (s ServerSettings) Clone() ServerSettings {
	out := s
	out.ControlSSL = cloneBool(s.ControlSSL)
	out.ControlCompress = cloneBool(s.ControlCompress)
	out.ControlHideConnectionErrors = cloneBool(s.ControlHideConnectionErrors)
	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
