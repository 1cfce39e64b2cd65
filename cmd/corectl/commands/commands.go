package commands

import "github.com/MKhiriev/go-service-core/command"

// All returns the built-in commands in help order.
func All(info BuildInfo) []command.Command {
	return []command.Command{
		NewVersion(info),
		NewSettings(),
		NewCheck(),
	}
}
