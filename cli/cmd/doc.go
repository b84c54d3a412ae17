// Package cmd implements the dotenvgen subcommands.
//
// Each command is a kong command struct with a Run(context.Context) method.
// Commands that read an env file embed [Source], which locates the file by
// walking up from a starting directory. Output goes to a file, or to the
// standard output stream installed with [WithStreams] when the path is "-".
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)

const (
	// DefaultBuildOutput is the file written by [Build] when no output is
	// given.
	DefaultBuildOutput = "dotenv_init.go"

	// DefaultModuleFile is the base name of the file written by [Module]
	// inside the generated package directory.
	DefaultModuleFile = "dotenv.go"

	// StdioPath selects a standard stream in place of a file path.
	StdioPath = "-"
)
