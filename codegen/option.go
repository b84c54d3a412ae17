package codegen

import "github.com/ardnew/dotenvgen/log"

// Option configures an emitter.
type Option func(config) config

type config struct {
	pkg        string
	source     string
	constName  string
	visibility Visibility
	logger     log.Logger
}

func makeConfig(pkg string, opts ...Option) config {
	cfg := config{
		pkg:        pkg,
		visibility: DefaultVisibility,
		logger:     log.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithPackage sets the package clause of the generated file.
// An empty name keeps the emitter's default.
func WithPackage(name string) Option {
	return func(c config) config {
		if name != "" {
			c.pkg = name
		}

		return c
	}
}

// WithSource names the env file in the generated header.
func WithSource(path string) Option {
	return func(c config) config {
		c.source = path

		return c
	}
}

// WithConstName sets the identifier declared by [Lookup].
func WithConstName(name string) Option {
	return func(c config) config {
		c.constName = name

		return c
	}
}

// WithVisibility sets the visibility checked by [Module].
func WithVisibility(v Visibility) Option {
	return func(c config) config {
		c.visibility = v

		return c
	}
}

// WithLogger replaces the package logger.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}
