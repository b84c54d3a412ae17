package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/dotenvgen/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// envarPrefix prefixes the environment variable of every flag.
const envarPrefix = "DOTENVGEN"

// basePrefix returns the base name used to construct the configuration and
// cache directory paths.
//
// By default, basePrefix is the base name of the executable file unless it
// matches one of the following substitution rules:
//   - "*.test" (go test binaries): replaced with cmd
//   - "__debug_bin" (default output of the dlv debugger): replaced with cmd
//   - "^\.+" (dot-prefixed names): remove the dot prefix
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		id = strings.TrimSuffix(filepath.Base(id), ".exe")
		if strings.HasSuffix(id, ".test") {
			return pkg.Name
		}

		id = strings.TrimSuffix(id, filepath.Ext(id))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name, // dlv default output
			regexp.MustCompile(`^\.+`):             "",       // remove leading dot(s)
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir joins the first base directory that can be determined with
// [basePrefix]. fallback is used below the home directory when dir fails.
func userDir(dir func() (string, error), fallback string) string {
	base, err := dir()
	if err != nil {
		base, err = os.UserHomeDir()
		if err == nil {
			base = filepath.Join(base, fallback)
		} else {
			base, err = os.Getwd()
			if err != nil {
				base = "."
			}
		}
	}

	return filepath.Join(base, basePrefix())
}

// configDir returns the configuration directory path.
// It is read on each call so that XDG_CONFIG_HOME changes are observed.
func configDir() string {
	return userDir(os.UserConfigDir, ".config")
}

// cacheDir returns the cache directory path used for transient files.
func cacheDir() string {
	return userDir(os.UserCacheDir, ".cache")
}

// configPath returns the absolute path to a file or directory formed by joining
// the global configuration directory path with the given path elements.
//
// If no elements are given, it is equivalent to calling [configDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}
