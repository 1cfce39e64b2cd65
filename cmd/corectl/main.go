// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command corectl is the reference host for the go-service-core library:
// it registers the built-in commands, loads settings and dispatches.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-service-core/cmd/corectl/commands"
	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/logger"
	"github.com/MKhiriev/go-service-core/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	log := logger.NewLogger("corectl")

	cmds := commands.All(commands.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})

	root, err := command.ConfigureAll("corectl", "Inspect and validate service settings", cmds)
	if err != nil {
		return err
	}
	bindFlags(root)

	matches, err := command.Parse(root, args)
	if err != nil {
		return err
	}
	if matches.Help {
		return matches.ShowHelp()
	}

	opts, err := resolveOptions(root)
	if err != nil {
		return err
	}

	s, err := settings.Load[settings.Settings](opts.ConfigLocation, opts.EnvPrefix)
	if err != nil {
		return err
	}

	if err := log.SetLevel(s.Logging.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", s.Logging.LogLevel).Msg("ignoring invalid log level")
	}
	log.Debug().Any("settings", s).Msg("loaded settings")

	return command.HandleAll(log.WithContext(context.Background()), matches, cmds, s)
}
