// Package commands holds the built-in corectl subcommands.
//
// Commands
//
//   - version    Print build version, date and commit
//   - settings   Print the loaded settings (--format json|text)
//   - check      Validate the loaded settings (--require-database)
package commands
