package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/errs"
	"github.com/MKhiriev/go-service-core/logger"
	"github.com/MKhiriev/go-service-core/settings"
)

type checkCommand struct{}

// NewCheck returns the command validating the loaded settings.
func NewCheck() command.Command {
	return &checkCommand{}
}

func (c *checkCommand) Name() string  { return "check" }
func (c *checkCommand) About() string { return "Validate the loaded settings" }

func (c *checkCommand) Configure() *cobra.Command {
	cmd := command.Default(c)
	cmd.Args = cobra.NoArgs
	cmd.Flags().Bool("require-database", false, "fail when database.url is not set")
	return cmd
}

func (c *checkCommand) Handle(ctx context.Context, matches *command.Matches, s *settings.Settings) error {
	log := logger.FromContext(ctx)

	if err := s.Validate(); err != nil {
		return err
	}

	requireDB, err := matches.Command.Flags().GetBool("require-database")
	if err != nil {
		return errs.Command(err.Error())
	}
	if requireDB && s.Database.URL == "" {
		return errs.Env(fmt.Sprintf("%s__DATABASE__URL", strings.ToUpper(s.Config.EnvPrefix)))
	}

	log.Info().Str("location", s.Config.Location).Msg("settings are valid")
	fmt.Fprintln(matches.Command.OutOrStdout(), "settings OK")
	return nil
}
