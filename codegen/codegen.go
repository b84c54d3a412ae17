package codegen

import (
	"bytes"
	"context"
	"go/format"
	"go/token"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"text/template"

	"github.com/ardnew/dotenvgen/dotenv"
	"github.com/ardnew/dotenvgen/pkg"
)

const (
	// DefaultBuildPackage is the package clause written by [Build].
	DefaultBuildPackage = "main"
	// DefaultNamespace is the package written by [Module].
	DefaultNamespace = "dotenvvars"
)

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"quote": Literal,
}).Parse(`
{{- define "header" -}}
// Code generated by {{.Tool}}{{with .Source}} from {{.}}{{end}}; DO NOT EDIT.

package {{.Package}}
{{end}}

{{- define "build" -}}
{{template "header" .}}
{{- if .Entries}}
import "os"

func init() {
	for _, kv := range [...][2]string{
	{{- range .Entries}}
		{ {{- quote .Name}}, {{quote .Value -}} },
	{{- end}}
	} {
		if err := os.Setenv(kv[0], kv[1]); err != nil {
			panic(err)
		}
	}
}
{{- end}}
{{end}}

{{- define "module" -}}
{{template "header" .}}
const (
{{- range .Entries}}
	{{.Name}} = {{quote .Value}}
{{- end}}
)
{{end}}

{{- define "lookup" -}}
{{template "header" .}}
const {{.Name}} = {{quote .Value}}
{{end}}
`))

type data struct {
	Tool    string
	Source  string
	Package string
	Name    string
	Value   string
	Entries []dotenv.Entry
}

// Literal returns value as a Go interpreted string literal.
func Literal(value string) string {
	return strconv.Quote(value)
}

// Build writes a Go file for the package set by [WithPackage] (default
// "main") whose init function assigns every entry of seq to the process
// environment, in file order. A name assigned twice is set twice, so the
// later value is the one that remains.
//
// The first parse error in seq is returned and nothing is written.
func Build(ctx context.Context, w io.Writer, seq iter.Seq2[dotenv.Entry, error], opts ...Option) error {
	cfg := makeConfig(DefaultBuildPackage, opts...)

	if err := checkPackage(cfg.pkg); err != nil {
		return err
	}

	entries, err := dotenv.Collect(seq)
	if err != nil {
		return err
	}

	return cfg.render(ctx, w, "build", data{Entries: entries})
}

// Module writes a Go file for the package set by [WithPackage] (default
// "dotenvvars") that declares one string constant per distinct name in seq.
// A name assigned more than once keeps its last value.
//
// Names that are Go keywords, or "init", cannot be declared and are
// reported as [ErrReservedName]. With [VisibilityPublic], names that are not
// exported are logged as a warning since importers cannot use them.
//
// The first parse error in seq is returned and nothing is written.
func Module(ctx context.Context, w io.Writer, seq iter.Seq2[dotenv.Entry, error], opts ...Option) error {
	cfg := makeConfig(DefaultNamespace, opts...)

	if err := checkPackage(cfg.pkg); err != nil {
		return err
	}

	entries, err := dotenv.Collect(seq)
	if err != nil {
		return err
	}

	entries = dotenv.Dedupe(entries)

	for _, entry := range entries {
		if reserved(entry.Name) {
			return ErrReservedName.With(
				slog.String("name", entry.Name),
				slog.Int("line", entry.Line),
			)
		}

		if cfg.visibility == VisibilityPublic && !token.IsExported(entry.Name) {
			cfg.logger.WarnContext(ctx, "constant is not exported",
				slog.String("name", entry.Name),
				slog.String("package", cfg.pkg),
			)
		}
	}

	return cfg.render(ctx, w, "module", data{Entries: entries})
}

// Lookup writes a Go file declaring a single string constant holding value.
// The constant is named by [WithConstName], or name if none is given.
func Lookup(ctx context.Context, w io.Writer, name, value string, opts ...Option) error {
	cfg := makeConfig(DefaultBuildPackage, opts...)

	if err := checkPackage(cfg.pkg); err != nil {
		return err
	}

	ident := cfg.constName
	if ident == "" {
		ident = name
	}

	if reserved(ident) {
		return ErrReservedName.With(slog.String("name", ident))
	}

	if !token.IsIdentifier(ident) {
		return ErrConstName.With(slog.String("name", ident))
	}

	return cfg.render(ctx, w, "lookup", data{Name: ident, Value: value})
}

// checkPackage reports whether name can appear in a package clause.
func checkPackage(name string) error {
	if !token.IsIdentifier(name) || name == "_" {
		return ErrPackageName.With(slog.String("package", name))
	}

	return nil
}

// reserved reports whether name cannot be declared at package scope.
func reserved(name string) bool {
	return token.IsKeyword(name) || name == "init"
}

// render executes the named template, formats the result and writes it to w
// in a single call.
func (c config) render(ctx context.Context, w io.Writer, name string, d data) error {
	d.Tool = pkg.Name
	d.Source = c.source
	d.Package = c.pkg

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		return ErrFormat.Wrap(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		c.logger.DebugContext(ctx, "unformatted source",
			slog.String("template", name),
			slog.String("source", buf.String()),
		)

		return ErrFormat.Wrap(err)
	}

	if _, err := w.Write(src); err != nil {
		return ErrWrite.Wrap(err)
	}

	c.logger.DebugContext(ctx, "generated",
		slog.String("template", name),
		slog.String("package", c.pkg),
		slog.Int("bytes", len(src)),
	)

	return nil
}
