package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/errs"
)

// annotationHelpRequired marks a root that shows help instead of
// succeeding silently when no subcommand is given.
const annotationHelpRequired = "command.help-required"

// ConfigureAll builds the root command with one subcommand per entry of
// commands, in order. Duplicate names and commands whose Configure result
// is not named Name() are rejected with a KindCommand error.
func ConfigureAll(rootName, rootAbout string, commands []Command) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   rootName,
		Short: rootAbout,
		Annotations: map[string]string{
			annotationHelpRequired: "true",
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	seen := make(map[string]struct{}, len(commands))
	for _, c := range commands {
		name := c.Name()
		if _, dup := seen[name]; dup {
			return nil, errs.Command(fmt.Sprintf("Duplicate command: %s", name))
		}
		seen[name] = struct{}{}

		sub := c.Configure()
		if sub == nil || sub.Name() != name {
			return nil, errs.Command(fmt.Sprintf("Command %s is not configured under its own name", name))
		}

		root.AddCommand(sub)
	}

	return root, nil
}

func helpRequired(root *cobra.Command) bool {
	return root.Annotations[annotationHelpRequired] == "true"
}
