// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-service-core/errs"
)

// Validate checks that s can be used at startup. Empty optional fields are
// valid. Returns a KindConfig *errs.Error wrapping one of the ErrInvalid*
// sentinels.
func (s *Settings) Validate() error {
	if _, err := zerolog.ParseLevel(s.Logging.LogLevel); err != nil {
		return errs.Wrap(errs.KindConfig, fmt.Errorf("%w: %w", ErrInvalidLoggingConfigs, err))
	}

	if s.Database.URL != "" {
		u, err := url.Parse(s.Database.URL)
		if err != nil {
			return errs.Wrap(errs.KindConfig, fmt.Errorf("%w: %w", ErrInvalidDatabaseConfigs, err))
		}
		if u.Scheme == "" {
			return errs.Wrap(errs.KindConfig, fmt.Errorf("%w: url has no scheme", ErrInvalidDatabaseConfigs))
		}
	}

	if s.Tracing.OTLPEndpoint != "" {
		u, err := url.Parse(s.Tracing.OTLPEndpoint)
		if err != nil {
			return errs.Wrap(errs.KindConfig, fmt.Errorf("%w: %w", ErrInvalidTracingConfigs, err))
		}
		if !u.IsAbs() || u.Host == "" {
			return errs.Wrap(errs.KindConfig, fmt.Errorf("%w: endpoint must be an absolute URL", ErrInvalidTracingConfigs))
		}
	}

	return nil
}
