// Package pkg holds metadata shared by the command and its packages.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in generated file headers, help
	// output, the configuration directory and the environment variable
	// prefix.
	Name = "dotenvgen"
	// Description is a one-line summary used in help output.
	Description = "Generate Go source from .env files"
)

// AuthorInfo is an author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
