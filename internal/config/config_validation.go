// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Required: a database DSN, both token keys, and the token issuer.
// UnlockDuration and RequestTimeout fall back to defaults when unset.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSignKey == "" || cfg.App.UnlockSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	// The two keys being equal would make session tokens pass the journal
	// gate; refuse to start in that shape.
	if cfg.App.SessionSignKey == cfg.App.UnlockSignKey {
		return ErrInvalidAppConfigs
	}

	if cfg.App.UnlockDuration == 0 {
		cfg.App.UnlockDuration = defaultUnlockDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	return nil
}
