package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/dotenvgen/dotenv"
)

// Fmt prints the entries of an env file in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as .env syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as a JSON object."`
	YAML   YAML   `cmd:""                    help:"Format as a YAML mapping."`
}

// Input selects the entries formatted by a fmt subcommand.
type Input struct {
	Source `embed:""`

	Path string `arg:"" help:"Env file to read, or '-' for standard input. Searched for when omitted." optional:"" placeholder:"FILE"`
}

// entries reads and parses the selected input. Every parse error is
// returned, joined, and no entries are formatted.
func (in *Input) entries(ctx context.Context) ([]dotenv.Entry, error) {
	var seq iter.Seq2[dotenv.Entry, error]

	switch in.Path {
	case "":
		file, err := in.find(ctx)
		if err != nil {
			return nil, err
		}

		seq = file.Entries()

	case StdioPath:
		var err error

		seq, err = dotenv.ParseReader(streamsFrom(ctx).In)
		if err != nil {
			return nil, ErrReadSource.Wrap(err)
		}

	default:
		contents, err := os.ReadFile(in.Path)
		if err != nil {
			return nil, ErrReadSource.With(slog.String("file", in.Path)).Wrap(err)
		}

		file := &dotenv.File{
			Dir:      filepath.Dir(in.Path),
			Path:     in.Path,
			Contents: contents,
		}

		seq = file.Entries()
	}

	return dotenv.CollectAll(seq)
}

// Native formats entries as .env syntax.
type Native struct {
	Input `embed:""`

	Dedupe bool `help:"Keep only the last assignment of each name." short:"d"`
	Export bool `help:"Prefix each line with export."               short:"x"`
}

// Run executes the native command.
func (n *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	entries, err := n.entries(ctx)
	if err != nil {
		return err
	}

	if n.Dedupe {
		entries = dotenv.Dedupe(entries)
	}

	var buf bytes.Buffer

	for _, entry := range entries {
		if n.Export {
			buf.WriteString("export ")
		}

		buf.WriteString(entry.String())
		buf.WriteByte('\n')
	}

	return writeOutput(ctx, StdioPath, buf.Bytes())
}

// JSON formats entries as a JSON object. A name assigned more than once keeps
// its last value.
type JSON struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for JSON output." short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	entries, err := j.entries(ctx)
	if err != nil {
		return err
	}

	var out []byte

	if j.Indent > 0 {
		out, err = json.MarshalIndent(object(entries), "", strings.Repeat(" ", j.Indent))
	} else {
		out, err = json.Marshal(object(entries))
	}

	if err != nil {
		return ErrMarshal.With(slog.String("format", "json")).Wrap(err)
	}

	return writeOutput(ctx, StdioPath, append(out, '\n'))
}

// YAML formats entries as a YAML mapping. A name assigned more than once
// keeps its last value.
type YAML struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width for YAML output." short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	entries, err := y.entries(ctx)
	if err != nil {
		return err
	}

	out, err := yaml.MarshalContext(ctx, object(entries).mapSlice(), yaml.Indent(max(y.Indent, 1)))
	if err != nil {
		return ErrMarshal.With(slog.String("format", "yaml")).Wrap(err)
	}

	return writeOutput(ctx, StdioPath, out)
}

// object is a list of entries encoded as a mapping from name to value, in
// order of first assignment.
type object []dotenv.Entry

// MarshalJSON implements json.Marshaler.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range dotenv.Dedupe(o) {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (o object) mapSlice() yaml.MapSlice {
	deduped := dotenv.Dedupe(o)
	ms := make(yaml.MapSlice, len(deduped))

	for i, entry := range deduped {
		ms[i] = yaml.MapItem{Key: entry.Name, Value: entry.Value}
	}

	return ms
}
