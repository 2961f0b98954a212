// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// MergeSettings deep-merges the partial record src over base and returns the
// result as a fresh record. Non-zero fields of src win; zero fields keep the
// base value. Nested records are merged field by field, so the operation is
// associative and idempotent: merging the same partial twice yields the same
// result as merging it once.
//
// The server list is replaced wholesale when src carries one: a layer that
// declares servers declares all of them. Per-server partial overrides go
// through [MergeServerOverride] instead.
func MergeSettings(base Settings, src Settings) (Settings, error) {
	out := base.Clone()

	if err := mergo.Merge(&out, src.Clone(), mergo.WithOverride); err != nil {
		return Settings{}, fmt.Errorf("error merging settings: %w", err)
	}

	// mergo cannot tell an explicit false pointee from an unset field, so
	// pointer fields are applied by hand: non-nil src wins even when it
	// points at a zero value.
	if src.CheckConfigPermissions != nil {
		out.CheckConfigPermissions = cloneBool(src.CheckConfigPermissions)
	}

	if src.Servers != nil {
		out.Servers = make([]ServerSettings, len(src.Servers))
		for i, srv := range src.Servers {
			out.Servers[i] = srv.Clone()
		}
	}

	return out, nil
}

// ServerOverride is a partial server descriptor carried by a user preference
// overlay. Nil fields leave the base descriptor untouched, which makes an
// explicit false/zero override distinguishable from "not set".
type ServerOverride struct {
	Host                 *string `json:"host,omitempty"`
	Port                 *int    `json:"port,omitempty"`
	Socket               *string `json:"socket,omitempty"`
	Verbose              *string `json:"verbose,omitempty"`
	SSL                  *bool   `json:"ssl,omitempty"`
	Compress             *bool   `json:"compress,omitempty"`
	HideConnectionErrors *bool   `json:"hide_connection_errors,omitempty"`
}

// IsZero reports whether the override carries no values at all.
func (o ServerOverride) IsZero() bool {
	return o.Host == nil && o.Port == nil && o.Socket == nil && o.Verbose == nil &&
		o.SSL == nil && o.Compress == nil && o.HideConnectionErrors == nil
}

// MergeServerOverride applies the non-nil fields of the override onto a copy
// of the base descriptor and returns it.
func MergeServerOverride(base ServerSettings, o ServerOverride) ServerSettings {
	out := base.Clone()

	if o.Host != nil {
		out.Host = *o.Host
	}
	if o.Port != nil {
		out.Port = *o.Port
	}
	if o.Socket != nil {
		out.Socket = *o.Socket
	}
	if o.Verbose != nil {
		out.Verbose = *o.Verbose
	}
	if o.SSL != nil {
		out.SSL = *o.SSL
	}
	if o.Compress != nil {
		out.Compress = *o.Compress
	}
	if o.HideConnectionErrors != nil {
		out.HideConnectionErrors = *o.HideConnectionErrors
	}

	return out
}
