package main

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/errs"
)

// options tells corectl where to load settings from. Environment values are
// overridden by the root flags when those are set.
type options struct {
	// ConfigLocation is the settings file location.
	// Env: CORECTL_CONFIG, flag: -c / --config
	ConfigLocation string `env:"CORECTL_CONFIG" envDefault:"config.json"`

	// EnvPrefix is the prefix of settings environment variables.
	// Env: CORECTL_ENV_PREFIX, flag: --env-prefix
	EnvPrefix string `env:"CORECTL_ENV_PREFIX" envDefault:"CORECTL"`
}

func bindFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("config", "c", "", "settings file location (env CORECTL_CONFIG)")
	root.PersistentFlags().String("env-prefix", "", "settings environment variable prefix (env CORECTL_ENV_PREFIX)")
}

// resolveOptions reads options from the environment, then merges the
// parsed root flags on top.
func resolveOptions(root *cobra.Command) (*options, error) {
	opts := &options{}
	if err := env.Parse(opts); err != nil {
		return nil, errs.Wrap(errs.KindEnv, fmt.Errorf("error getting env options: %w", err))
	}

	flagOpts := &options{}
	flagOpts.ConfigLocation, _ = root.PersistentFlags().GetString("config")
	flagOpts.EnvPrefix, _ = root.PersistentFlags().GetString("env-prefix")

	if err := mergo.Merge(opts, flagOpts, mergo.WithOverride); err != nil {
		return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("error merging options: %w", err))
	}

	return opts, nil
}
