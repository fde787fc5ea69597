// Package config holds the environment & exit helpers shared by the
// command line tools.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target interface{}) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}
