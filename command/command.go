// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

//go:generate mockgen -source=command.go -destination=../internal/mock/command_mock.go -package=mock

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/settings"
)

// Command is a named, invocable unit of CLI behaviour.
type Command interface {
	// Name returns the subcommand name used for dispatch. It must be unique
	// among the commands passed to [ConfigureAll].
	Name() string

	// About returns the one-line description shown in help output.
	About() string

	// Configure describes the command's CLI surface. Implementations without
	// flags return Default(c); others extend it. The returned command must
	// keep Name() as its name.
	Configure() *cobra.Command

	// Handle executes the command with its parsed arguments and a private
	// copy of the loaded settings.
	Handle(ctx context.Context, matches *Matches, s *settings.Settings) error
}

// Default builds the spec every command starts from: its name and about
// text and nothing else.
func Default(c Command) *cobra.Command {
	return &cobra.Command{
		Use:   c.Name(),
		Short: c.About(),
	}
}
