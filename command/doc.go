// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package command registers CLI subcommands on a cobra root and dispatches
// a parsed invocation to the matching implementation.
//
// A host process follows the same sequence on every run:
//
//	root, err := command.ConfigureAll("svc", "Example service", cmds)
//	matches, err := command.Parse(root, os.Args[1:])
//	if matches.Help {
//	    return matches.ShowHelp()
//	}
//	s, err := settings.Load[settings.Settings](location, "SVC")
//	err = command.HandleAll(ctx, matches, cmds, s)
//
// Commands are matched by [Command.Name] with a linear, case-sensitive scan;
// the first match wins. Every failure is an *errs.Error of KindCommand.
package command
