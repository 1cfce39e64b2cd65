package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/errs"
	"github.com/MKhiriev/go-service-core/settings"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type settingsCommand struct{}

// NewSettings returns the command printing the loaded settings.
func NewSettings() command.Command {
	return &settingsCommand{}
}

func (c *settingsCommand) Name() string  { return "settings" }
func (c *settingsCommand) About() string { return "Print the loaded settings" }

func (c *settingsCommand) Configure() *cobra.Command {
	cmd := command.Default(c)
	cmd.Args = cobra.NoArgs
	cmd.Flags().StringP("format", "f", formatJSON, "output format: json or text")
	return cmd
}

func (c *settingsCommand) Handle(_ context.Context, matches *command.Matches, s *settings.Settings) error {
	format, err := matches.Command.Flags().GetString("format")
	if err != nil {
		return errs.Command(err.Error())
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errs.Command(fmt.Sprintf("encoding settings: %v", err))
	}

	out := matches.Command.OutOrStdout()
	switch format {
	case formatJSON:
		fmt.Fprintln(out, string(data))
		return nil
	case formatText:
		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return errs.Command(fmt.Sprintf("decoding settings: %v", err))
		}
		flat := make(map[string]any)
		flatten("", tree, flat)
		for _, key := range slices.Sorted(maps.Keys(flat)) {
			fmt.Fprintf(out, "%s = %v\n", key, flat[key])
		}
		return nil
	default:
		return errs.Command(fmt.Sprintf("unsupported format: %s", format))
	}
}

// flatten writes the leaves of tree into flat under dot-separated keys.
func flatten(prefix string, tree map[string]any, flat map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flatten(key, child, flat)
			continue
		}
		flat[key] = value
	}
}
