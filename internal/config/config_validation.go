// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing secret is the only hard requirement: a process without
// it cannot mint or verify session tokens and must refuse to start.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.JanitorInterval <= 0 || cfg.Workers.ChallengeTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
