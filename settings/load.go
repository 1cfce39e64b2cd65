// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-viper/mapstructure/v2"

	"github.com/MKhiriev/go-service-core/errs"
)

// Keys injected into every merged tree before decoding.
const (
	KeyConfigLocation  = "config.location"
	KeyConfigEnvPrefix = "config.env_prefix"
)

// Loadable is satisfied by pointer-to-settings types that [Load] can
// assemble. The zero value of T must be usable; if *T also has a
// SetDefaults method it is called before any source is applied.
type Loadable[T any] interface {
	*T
	Clone() *T
}

type defaulter interface {
	SetDefaults()
}

// Load builds a T from the required file at location and the environment
// variables prefixed with envPrefix, environment values taking precedence.
//
// Failures are reported as *errs.Error: a missing or unreadable file is
// KindIO, a malformed file or a failed override is KindConfig, and a tree
// that does not fit T is KindDeserialize.
func Load[T any, PT Loadable[T]](location, envPrefix string) (*T, error) {
	return load[T, PT](location, envPrefix, env.ToMap(os.Environ()))
}

func load[T any, PT Loadable[T]](location, envPrefix string, environ map[string]string) (*T, error) {
	tree, err := newSourceBuilder().
		withFile(location).
		withEnv(envPrefix, environ).
		withOverride(KeyConfigLocation, location).
		withOverride(KeyConfigEnvPrefix, envPrefix).
		build()
	if err != nil {
		return nil, err
	}

	target := PT(new(T))
	if d, ok := any(target).(defaulter); ok {
		d.SetDefaults()
	}

	if err := decode(tree, target); err != nil {
		return nil, err
	}

	return (*T)(target), nil
}

// decode maps tree onto target using json tag names. Scalars are converted
// weakly, so "8080" from the environment fills an int field.
func decode(tree map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return errs.Wrap(errs.KindDeserialize, fmt.Errorf("creating decoder: %w", err))
	}

	if err := decoder.Decode(tree); err != nil {
		return errs.Wrap(errs.KindDeserialize, err)
	}

	return nil
}
