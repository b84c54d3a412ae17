// Package cli contains the command line interface for dotenvgen.
//
// # Usage
//
//	dotenvgen [flags] <command> [args]
//
// Typical use is through go generate, which sets GOPACKAGE so that build
// writes a file for the package being generated:
//
//	//go:generate go run github.com/ardnew/dotenvgen build
//
// Commands:
//
//   - build: write dotenv_init.go, whose init function loads the env file
//   - module: write a package of string constants, public or internal
//   - lookup: print one variable as a Go literal or constant declaration
//   - check: report every malformed line
//   - fmt: print entries as .env syntax, JSON or YAML
//   - init: write the configuration file
//
// # Configuration
//
// Flags not given on the command line are taken from environment variables
// named DOTENVGEN_<FLAG> (for example DOTENVGEN_LOG_LEVEL) or from the YAML
// file config.yaml in the user configuration directory:
//
//	$XDG_CONFIG_HOME/dotenvgen/config.yaml   (Linux/Unix)
//	~/Library/Application Support/dotenvgen  (macOS)
//	%AppData%\dotenvgen                      (Windows)
//
// A config.json file in the same directory is also read. Run "dotenvgen
// init" to write the current global flag values as a starting point.
//
// # Diagnostics
//
// Failures are described on standard error with [Report] and the process
// exits with a non-zero status. Parse errors point at the offending column:
//
//	.env:3:7: unterminated quote: missing closing "
//	3 | TOKEN="abc
//	  |       ^
package cli
