// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionSecret == "" || cfg.App.SessionTTL <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	google := cfg.OAuth.Google
	if (google.ClientID == "") != (google.ClientSecret == "") {
		errs = append(errs, ErrInvalidOAuthConfigs)
	}
	if google.Enabled() && google.CallbackURL == "" {
		errs = append(errs, ErrInvalidOAuthConfigs)
	}

	return errors.Join(errs...)
}
