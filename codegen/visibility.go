package codegen

//go:generate go tool stringer --linecomment --type Visibility --output visibility_string.go

import (
	"iter"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Visibility selects who may import a generated constants package.
type Visibility int

const (
	// VisibilityPublic places the package where any importer can reach it.
	VisibilityPublic Visibility = iota // public
	// VisibilityInternal places the package under an internal directory,
	// limiting importers to the enclosing tree.
	VisibilityInternal // internal
)

// DefaultVisibility is used when no visibility is given.
const DefaultVisibility = VisibilityPublic

var visibilityAlias = map[string]Visibility{
	"public":   VisibilityPublic,
	"pub":      VisibilityPublic,
	"exported": VisibilityPublic,
	"internal": VisibilityInternal,
	"private":  VisibilityInternal,
	"crate":    VisibilityInternal,
}

// Visibilities yields the canonical visibility names.
func Visibilities() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range []Visibility{VisibilityPublic, VisibilityInternal} {
			if !yield(v.String()) {
				return
			}
		}
	}
}

// VisibilityAliases returns every name accepted by [ParseVisibility],
// sorted.
func VisibilityAliases() []string {
	return slices.Sorted(maps.Keys(visibilityAlias))
}

// ParseVisibility accepts a canonical name or one of its aliases:
// "pub" and "exported" for public, "private" and "crate" for internal.
func ParseVisibility(s string) (Visibility, error) {
	v, ok := visibilityAlias[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultVisibility, ErrVisibility.With(slog.String("visibility", s))
	}

	return v, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Dir returns the directory that holds the package named namespace below
// root: root/namespace for public packages and root/internal/namespace for
// internal ones.
func (v Visibility) Dir(root, namespace string) string {
	if v == VisibilityInternal {
		return filepath.Join(root, "internal", namespace)
	}

	return filepath.Join(root, namespace)
}
