package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/dotenvgen/log"
)

// resolve returns a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Top-level keys name global flags, or flags of any command. A mapping
// keyed by a command name holds flags for that command only and takes
// precedence:
//
//	log-level: info
//	package: app
//	module:
//	  visibility: internal
//	  namespace: settings
//
// Keys may use hyphens or underscores. Command-line flags override config
// file values. A file that cannot be parsed is
// logged and ignored.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var cfg config

		err := yaml.NewDecoder(r).DecodeContext(ctx, &cfg)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring configuration file",
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	// No validation needed - unknown keys are ignored
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if parent != nil && parent.Command != nil {
		if section, ok := c.lookup(parent.Command.Name); ok {
			if m, ok := section.(map[string]any); ok {
				if value, ok := config(m).lookup(flag.Name); ok {
					return scalar(value), nil
				}
			}
		}
	}

	if value, ok := c.lookup(flag.Name); ok {
		if _, nested := value.(map[string]any); !nested {
			return scalar(value), nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// lookup tries name as given and with hyphens replaced by underscores.
func (c config) lookup(name string) (any, bool) {
	if value, ok := c[name]; ok {
		return value, true
	}

	value, ok := c[strings.ReplaceAll(name, "-", "_")]

	return value, ok
}

// scalar converts numbers to strings, which Kong requires for parsing.
func scalar(value any) any {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v)
	}

	return value
}
