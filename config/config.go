// Package config reads the JSON file that configures segmentation runs.
package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/slic/logging"
	"go.viam.com/slic/vision/superpixel"
)

// Config is the contents of a config file.
type Config struct {
	// ConfigFilePath is where the config was read from, if anywhere.
	ConfigFilePath string `json:"-"`

	Segmentation superpixel.Config            `json:"segmentation"`
	Log          []logging.LoggerPatternConfig `json:"log,omitempty"`
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{Segmentation: superpixel.DefaultConfig()}
}

// Validate returns every problem with the config.
func (c *Config) Validate() error {
	var errs error
	if err := c.Segmentation.Validate(); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "segmentation"))
	}
	if err := logging.ValidatePatterns(c.Log); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "log"))
	}
	return errs
}
