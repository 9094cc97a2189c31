// Package config loads the settings of the poecmp command.
//
// Settings come, in increasing priority, from the defaults, an optional YAML
// file, and POE_* environment variables. Command line flags are applied on top
// by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, e.g. POE_ROOT.
const EnvPrefix = "POE"

// Config holds the settings of a comparison.
type Config struct {
	Root        string `yaml:"root" envconfig:"ROOT" validate:"required"`                     // folder holding the dumps
	Extension   string `yaml:"extension" envconfig:"EXTENSION" validate:"required,startswith=."` // dump file extension
	Workers     int    `yaml:"workers" envconfig:"WORKERS" validate:"min=1,max=64"`           // dumps read concurrently
	FailOnEmpty bool   `yaml:"fail_on_empty" envconfig:"FAIL_ON_EMPTY"`                       // a dump without rate is an error
	Verbose     bool   `yaml:"verbose" envconfig:"VERBOSE"`
	Addr        string `yaml:"addr" envconfig:"ADDR" validate:"required,hostname_port"` // listen address of serve
}

// Default returns the default configuration: dumps unpacked in the current folder.
func Default() Config {
	return Config{
		Root:      ".",
		Extension: ".csv",
		Workers:   1,
		Addr:      "localhost:8080",
	}
}

// Load returns the default configuration, overridden by the YAML file at path
// if path is not empty, then by the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every setting and reports all the invalid ones.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("invalid %s %q: must satisfy %s", fe.Field(), fmt.Sprint(fe.Value()), fe.ActualTag()))
	}
	return errors.Join(errs...)
}
