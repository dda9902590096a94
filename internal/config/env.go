// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_*, STORAGE_*, ADAPTER_* and LOG_*
// variables, plus CONFIG (JSON file path) and CREDCACHE_PASSPHRASE.
// Unset variables leave their fields zero so that flags, the JSON file and
// the defaults can supply them later.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read credcache environment: %w", err)
	}

	return nil
}
