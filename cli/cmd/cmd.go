package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dotenvgen/dotenv"
	"github.com/ardnew/dotenvgen/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Streams are the standard streams used by commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type streamsKey struct{}

// WithStreams returns a new context.Context whose commands use s in place of
// the process streams. Nil fields keep the process stream.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

func streamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)

	return s.Fill()
}

// Fill returns s with each nil stream replaced by the process stream.
func (s Streams) Fill() Streams {
	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// Source selects the env file read by a command.
type Source struct {
	File string `default:"${dotenvFile}" help:"Name of the env file to search for."              placeholder:"NAME" short:"f"`
	Dir  string `default:"."             help:"Directory where the upward search starts." placeholder:"DIR"  short:"C" type:"path"`
}

// find locates the env file named by s.
func (s *Source) find(ctx context.Context) (*dotenv.File, error) {
	file, err := dotenv.Find(s.Dir, s.File)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "found env file",
		slog.String("path", file.Path),
		slog.Int("bytes", len(file.Contents)),
	)

	return file, nil
}

// writeOutput writes src to path, creating any missing parent directories.
// The path [StdioPath] writes to the standard output stream.
func writeOutput(ctx context.Context, path string, src []byte) error {
	if path == StdioPath {
		if _, err := streamsFrom(ctx).Out.Write(src); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ErrWriteOutput.With(slog.String("file", path)).Wrap(err)
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		return ErrWriteOutput.With(slog.String("file", path)).Wrap(err)
	}

	log.InfoContext(ctx, "wrote file",
		slog.String("path", path),
		slog.Int("bytes", len(src)),
	)

	return nil
}

// headerSource returns the path of file as recorded in a generated header:
// relative to the directory of output, or to the working directory when
// writing to standard output.
func headerSource(file *dotenv.File, output string) string {
	base := "."
	if output != StdioPath {
		base = filepath.Dir(output)
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return filepath.Base(file.Path)
	}

	rel, err := filepath.Rel(base, file.Path)
	if err != nil {
		return filepath.Base(file.Path)
	}

	return filepath.ToSlash(rel)
}
