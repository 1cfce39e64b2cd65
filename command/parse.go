package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-service-core/errs"
)

// Matches is a parsed invocation.
type Matches struct {
	// Root is the command tree the invocation was parsed against.
	Root *cobra.Command

	// Command is the deepest matched command with its flags parsed. It is
	// Root when no subcommand was given and nil when Name is not registered.
	// For "help <command>" it is the command help was asked for.
	Command *cobra.Command

	// Name is the invoked top-level subcommand, empty when none was given.
	Name string

	// Args holds the positional arguments left after flag parsing.
	Args []string

	// Help is set when help output was requested with -h/--help or the help
	// subcommand. A help-required root invoked without a subcommand sets it
	// too.
	Help bool
}

// Subcommand returns the invoked subcommand name and whether there is one.
func (m *Matches) Subcommand() (string, bool) {
	if m == nil || m.Name == "" {
		return "", false
	}
	return m.Name, true
}

// ShowHelp prints help for the matched command, or for the root when the
// subcommand is unknown.
func (m *Matches) ShowHelp() error {
	if m.Command != nil {
		return m.Command.Help()
	}
	return m.Root.Help()
}

// helpCommandName is answered by Parse unless a command claims the name.
const helpCommandName = "help"

// Parse resolves args (without the program name) against root. An unknown
// subcommand is not an error here: its name is kept in Matches.Name so that
// [HandleAll] can report it. Flag errors and violations of the argument
// and flag rules a command declares in Configure are KindCommand errors.
//
// "help [command...]" sets Help with Command resolved to the named topic.
func Parse(root *cobra.Command, args []string) (*Matches, error) {
	root.InitDefaultHelpFlag()

	// Find reports an error for unknown subcommands; that case is
	// handled below from the positional arguments.
	found, rest, _ := root.Find(args)
	if found == nil {
		found, rest = root, args
	}
	found.InitDefaultHelpFlag()

	if err := found.ParseFlags(rest); err != nil {
		return nil, errs.Command(fmt.Sprintf("Failed to parse arguments for %s: %v", found.CommandPath(), err))
	}

	help, _ := found.Flags().GetBool("help")
	m := &Matches{
		Root: root,
		Args: found.Flags().Args(),
		Help: help,
	}

	if found != root {
		m.Command = found
		m.Name = topLevel(root, found).Name()
		if m.Help {
			return m, nil
		}
		if err := validate(found, m.Args); err != nil {
			return nil, err
		}
		return m, nil
	}

	if len(m.Args) == 0 {
		m.Command = root
		m.Help = m.Help || helpRequired(root)
		return m, nil
	}

	if m.Args[0] == helpCommandName {
		return helpFor(root, m.Args[1:]), nil
	}

	m.Name, m.Args = m.Args[0], m.Args[1:]
	return m, nil
}

// validate applies the positional argument and flag rules declared on c.
func validate(c *cobra.Command, args []string) error {
	if err := c.ValidateArgs(args); err != nil {
		return errs.Command(fmt.Sprintf("Invalid arguments for %s: %v", c.CommandPath(), err))
	}
	if err := c.ValidateRequiredFlags(); err != nil {
		return errs.Command(fmt.Sprintf("Invalid arguments for %s: %v", c.CommandPath(), err))
	}
	if err := c.ValidateFlagGroups(); err != nil {
		return errs.Command(fmt.Sprintf("Invalid arguments for %s: %v", c.CommandPath(), err))
	}
	return nil
}

// helpFor answers "help [command...]" when no command is registered under
// that name. An unknown topic falls back to the root help.
func helpFor(root *cobra.Command, topic []string) *Matches {
	target, _, err := root.Find(topic)
	if err != nil || target == nil {
		target = root
	}
	target.InitDefaultHelpFlag()

	return &Matches{
		Root:    root,
		Command: target,
		Help:    true,
	}
}

// topLevel returns the direct child of root that leads to c.
func topLevel(root, c *cobra.Command) *cobra.Command {
	for c.Parent() != nil && c.Parent() != root {
		c = c.Parent()
	}
	return c
}
