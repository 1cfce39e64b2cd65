// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-service-core/errs"
	"github.com/MKhiriev/go-service-core/logger"
	"github.com/MKhiriev/go-service-core/settings"
)

// HandleAll dispatches matches to the first entry of commands whose Name
// equals the invoked subcommand and returns the handler's result unchanged.
//
// No subcommand is a no-op success. An unregistered name fails with
// "Unknown command: <name>" as a KindCommand error.
//
// The handler's context carries the logger from ctx tagged with a fresh
// run_id, and the handler receives a clone of s.
func HandleAll(ctx context.Context, matches *Matches, commands []Command, s *settings.Settings) error {
	name, ok := matches.Subcommand()
	if !ok {
		return nil
	}

	for _, c := range commands {
		if c.Name() != name {
			continue
		}

		log := logger.FromContext(ctx).WithRunID(newRunID())
		log.Debug().Str("command", name).Strs("args", matches.Args).Msg("dispatching command")

		err := c.Handle(log.WithContext(ctx), matches, s.Clone())
		if err != nil {
			log.Debug().Err(err).Str("command", name).Msg("command failed")
		}
		return err
	}

	return errs.Command(fmt.Sprintf("Unknown command: %s", name))
}

func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
