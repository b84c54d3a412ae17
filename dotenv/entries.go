package dotenv

import (
	"errors"
	"iter"
)

// Collect drains seq and returns its entries in order.
// It stops at the first error and returns it with the entries read so far.
func Collect(seq iter.Seq2[Entry, error]) ([]Entry, error) {
	var entries []Entry

	for entry, err := range seq {
		if err != nil {
			return entries, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// CollectAll drains seq completely. It returns every entry and, if any line
// failed, all of the errors joined with [errors.Join] in file order.
func CollectAll(seq iter.Seq2[Entry, error]) ([]Entry, error) {
	var (
		entries []Entry
		errs    []error
	)

	for entry, err := range seq {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		entries = append(entries, entry)
	}

	return entries, errors.Join(errs...)
}

// Fold maps each name to its value. A later entry for the same name replaces
// an earlier one.
func Fold(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))

	for _, entry := range entries {
		m[entry.Name] = entry.Value
	}

	return m
}

// Dedupe returns one entry per name, ordered by each name's first
// appearance and carrying the value of its last appearance.
func Dedupe(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if i, ok := index[entry.Name]; ok {
			out[i] = entry

			continue
		}

		index[entry.Name] = len(out)
		out = append(out, entry)
	}

	return out
}

// ParseErrors returns every [*ParseError] contained in err, which may be a
// single error, a wrapped error or a tree built with [errors.Join].
func ParseErrors(err error) []*ParseError {
	switch e := err.(type) {
	case nil:
		return nil

	case *ParseError:
		return []*ParseError{e}

	case interface{ Unwrap() []error }:
		var all []*ParseError

		for _, inner := range e.Unwrap() {
			all = append(all, ParseErrors(inner)...)
		}

		return all

	case interface{ Unwrap() error }:
		return ParseErrors(e.Unwrap())
	}

	return nil
}
