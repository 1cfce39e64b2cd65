package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/settings"
)

// BuildInfo is injected at link time, e.g.
// -ldflags "-X main.buildVersion=1.2.3".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type versionCommand struct {
	info BuildInfo
}

// NewVersion returns the version command.
func NewVersion(info BuildInfo) command.Command {
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}

	return &versionCommand{info: info}
}

func (c *versionCommand) Name() string  { return "version" }
func (c *versionCommand) About() string { return "Print build version, date and commit" }

func (c *versionCommand) Configure() *cobra.Command {
	cmd := command.Default(c)
	cmd.Args = cobra.NoArgs
	return cmd
}

func (c *versionCommand) Handle(_ context.Context, matches *command.Matches, _ *settings.Settings) error {
	out := matches.Command.OutOrStdout()

	fmt.Fprintf(out, "Build version: %s\n", c.info.Version)
	fmt.Fprintf(out, "Build date: %s\n", c.info.Date)
	fmt.Fprintf(out, "Build commit: %s\n", c.info.Commit)
	return nil
}
