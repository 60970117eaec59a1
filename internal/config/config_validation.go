// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the transport settings. Identity fields and the secret
// are not checked.
func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.DirectLine.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDirectLineConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an absolute http(s) URL", ErrInvalidDirectLineConfigs, cfg.DirectLine.Endpoint)
	}

	if cfg.DirectLine.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidDirectLineConfigs)
	}

	return nil
}
