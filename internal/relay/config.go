// SPDX-License-Identifier: AGPL-3.0-or-later

// Package relay forwards analysis context to an external generation
// service. It is deliberately outside the generation pipeline: nothing in
// the core calls it, and it holds no state beyond its configuration.
package relay

import (
	"errors"
	"time"
)

// Defaults applied when the configuration leaves a value unset.
const (
	DefaultModel   = "tachyons-default"
	DefaultTimeout = 30 * time.Second
)

// Config carries the upstream connection settings explicitly through the
// call path. Nothing in this package reads process-wide state.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Validate reports whether the configuration can reach the upstream. It is
// a recoverable startup check: the serve command surfaces the error and
// exits cleanly instead of crashing on the first request.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("relay: TACHYONS_API_KEY is not set")
	}
	if c.BaseURL == "" {
		return errors.New("relay: upstream base URL is not set")
	}
	return nil
}

func (c Config) model() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

func (c Config) timeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
