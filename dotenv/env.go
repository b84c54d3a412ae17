package dotenv

import (
	"errors"
	"maps"
	"os"
	"slices"
	"strings"
)

// Env is a mutable set of environment variables.
type Env interface {
	LookupEnv(name string) (string, bool)
	Setenv(name, value string) error
	Names() []string
}

// ProcessEnv is the environment of the running process.
type ProcessEnv struct{}

func (ProcessEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (ProcessEnv) Setenv(name, value string) error { return os.Setenv(name, value) }

func (ProcessEnv) Names() []string {
	environ := os.Environ()
	names := make([]string, 0, len(environ))

	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if name != "" {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// MapEnv is an in-memory environment.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]

	return v, ok
}

func (m MapEnv) Setenv(name, value string) error {
	m[name] = value

	return nil
}

func (m MapEnv) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Load applies the entries of file to env. Variables already present in env
// keep their values unless override is true. Within the file the last
// assignment to a name wins.
//
// Load applies nothing if the file contains a parse error, and returns the
// first one.
func Load(file *File, env Env, override bool) error {
	entries, err := Collect(file.Entries())
	if err != nil {
		return err
	}

	for _, entry := range Dedupe(entries) {
		if !override {
			if _, ok := env.LookupEnv(entry.Name); ok {
				continue
			}
		}

		if err := env.Setenv(entry.Name, entry.Value); err != nil {
			return WrapError(err)
		}
	}

	return nil
}

// LookupOption configures [Lookup].
type LookupOption func(lookupConfig) lookupConfig

type lookupConfig struct {
	dir      string
	filename string
	message  string
	env      Env
}

// WithDir sets the directory the file search starts in.
func WithDir(dir string) LookupOption {
	return func(c lookupConfig) lookupConfig {
		c.dir = dir

		return c
	}
}

// WithFilename sets the name of the file to search for.
func WithFilename(filename string) LookupOption {
	return func(c lookupConfig) lookupConfig {
		c.filename = filename

		return c
	}
}

// WithMessage sets the message reported when the variable is not defined.
func WithMessage(msg string) LookupOption {
	return func(c lookupConfig) lookupConfig {
		c.message = msg

		return c
	}
}

// WithEnv replaces the process environment.
func WithEnv(env Env) LookupOption {
	return func(c lookupConfig) lookupConfig {
		if env != nil {
			c.env = env
		}

		return c
	}
}

// Lookup loads the env file into the environment without overriding
// variables that are already set, then returns the value of name.
//
// A missing env file is not an error; the environment is consulted as is.
// An unreadable file or a parse error is returned unchanged. If name is not
// defined, Lookup returns a [*MissingVariableError] listing similar names.
func Lookup(name string, opts ...LookupOption) (string, error) {
	cfg := lookupConfig{env: ProcessEnv{}}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	file, err := Find(cfg.dir, cfg.filename)

	switch {
	case err == nil:
		if err := Load(file, cfg.env, false); err != nil {
			return "", err
		}

	case errors.Is(err, ErrUnreadable), !errors.Is(err, ErrNotFound):
		return "", err
	}

	if value, ok := cfg.env.LookupEnv(name); ok {
		return value, nil
	}

	return "", &MissingVariableError{
		Name:        name,
		Message:     cfg.message,
		Suggestions: Suggest(name, cfg.env.Names()),
	}
}
