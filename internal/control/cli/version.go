package cli

import (
	"fmt"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand holds the flags of the `version` command (none).
type VersionCommand struct {
}

// Execute prints the program version.
func (command *VersionCommand) Execute(args []string) error {
	fmt.Fprintln(stdout, versionString())
	return nil
}

func versionString() string {
	return fmt.Sprintf("flycreate %s (%s)", version, hash)
}
