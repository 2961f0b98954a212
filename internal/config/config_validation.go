// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package config

// validate checks that the final merged [BootConfig] satisfies the
// invariants required at startup.
//
// An empty storage DSN is valid: preference overlays then fall back to the
// cookie storage kind. The listen address is defaulted by the builder before
// validation runs.
func (cfg *BootConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
