package commands

import "fmt"

// VersionCommand prints the version the binary was built with.
type VersionCommand struct{}

var (
	// overridden in CI
	version = "dev"
)

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(version)

	return nil
}
