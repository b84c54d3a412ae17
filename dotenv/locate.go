package dotenv

import (
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is the name searched for when none is given.
const DefaultFilename = ".env"

// File is a located env file and its contents.
type File struct {
	// Dir is the directory that contains the file.
	Dir string
	// Path is the absolute path of the file.
	Path string
	// Contents holds the bytes read from Path.
	Contents []byte
}

// Entries returns the sequence produced by [Parse] over the file contents,
// with each [*ParseError] annotated with the file path.
func (f *File) Entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for entry, err := range Parse(string(f.Contents)) {
			if pe, ok := err.(*ParseError); ok {
				pe.Path = f.Path
			}

			if !yield(entry, err) {
				return
			}
		}
	}
}

// SearchPath returns dir followed by each of its ancestors, ending with the
// filesystem root. dir should be absolute and clean.
func SearchPath(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}

			dir = parent
		}
	}
}

// Find searches dir and then each of its ancestors for a file named
// filename, and returns the first one found with its contents.
//
// An empty dir means the working directory and an empty filename means
// [DefaultFilename]. Directories with the target name are skipped.
//
// If no file exists on the ancestor chain, Find returns a [*NotFoundError]
// wrapping [fs.ErrNotExist]. If a file exists but cannot be read, the search
// stops there and the [*NotFoundError] also matches [ErrUnreadable].
func Find(dir, filename string) (*File, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	if strings.ContainsRune(filename, filepath.Separator) ||
		strings.ContainsRune(filename, '/') ||
		filename == "." || filename == ".." {
		return nil, ErrInvalidFilename.With(slog.String("file", filename))
	}

	start, err := startDir(dir)
	if err != nil {
		return nil, err
	}

	for candidate := range SearchPath(start) {
		path := filepath.Join(candidate, filename)

		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, &NotFoundError{
				Filename: filename,
				Start:    start,
				Path:     path,
				Err:      err,
			}
		}

		if info.IsDir() {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &NotFoundError{
				Filename: filename,
				Start:    start,
				Path:     path,
				Err:      err,
			}
		}

		return &File{Dir: candidate, Path: path, Contents: data}, nil
	}

	return nil, &NotFoundError{
		Filename: filename,
		Start:    start,
		Err:      fs.ErrNotExist,
	}
}

// startDir resolves the directory a search begins in.
func startDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", WrapError(err)
		}

		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", WrapError(err)
	}

	return abs, nil
}
