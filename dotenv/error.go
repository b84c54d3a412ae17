package dotenv

//go:generate go tool stringer --linecomment --type ErrorKind,Quote --output kind_string.go

import (
	"errors"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrNotFound        = NewError("file not found")
	ErrUnreadable      = NewError("file not readable")
	ErrInvalidFilename = NewError("invalid file name")
	ErrParse           = NewError("parse error")
	ErrMissingVariable = NewError("environment variable not defined")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same message.
// Copies made by [Error.Wrap] and [Error.With] still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}

	return t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// NotFoundError reports that no readable file named Filename exists in Start
// or any of its ancestors.
//
// Err is [fs.ErrNotExist] when the search reached the filesystem root without
// a match. Otherwise a file was found at Path but could not be read, and Err
// holds the underlying I/O error.
type NotFoundError struct {
	Filename string
	Start    string
	Path     string
	Err      error
}

// Unreadable reports whether a file was found but could not be read.
func (e *NotFoundError) Unreadable() bool {
	return e.Err != nil && !errors.Is(e.Err, fs.ErrNotExist)
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Unreadable() {
		return "could not read " + e.Path + ": " + e.Err.Error()
	}

	return "could not find " + e.Filename + " in " + e.Start + " or any parent directory"
}

// Unwrap returns the sentinel and the underlying cause.
func (e *NotFoundError) Unwrap() []error {
	if e.Unreadable() {
		return []error{ErrNotFound, ErrUnreadable, e.Err}
	}

	return []error{ErrNotFound, e.Err}
}

// LogValue implements slog.LogValuer.
func (e *NotFoundError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Error()),
		slog.String("file", e.Filename),
		slog.String("start", e.Start),
	}

	if e.Path != "" {
		attrs = append(attrs, slog.String("path", e.Path))
	}

	return slog.GroupValue(attrs...)
}

// ErrorKind classifies a [ParseError].
type ErrorKind int

const (
	KindMalformedLine     ErrorKind = iota // malformed line
	KindInvalidIdentifier                  // invalid identifier
	KindUnterminatedQuote                  // unterminated quote
	KindInvalidEscape                      // invalid escape sequence
)

// ParseError describes a line that could not be parsed.
//
// Line and Column are 1-based. Column counts runes and points at the first
// offending character. Text is the raw line without its terminator.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Kind   ErrorKind
	Text   string
	Detail string
}

// Error implements the error interface using the conventional
// "file:line:col: message" layout understood by editors and go generate.
func (e *ParseError) Error() string {
	var sb strings.Builder

	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteByte(':')
	} else {
		sb.WriteString("line ")
	}

	sb.WriteString(strconv.Itoa(e.Line))

	if e.Column > 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e.Column))
	}

	sb.WriteString(": ")
	sb.WriteString(e.Kind.String())

	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

// Unwrap returns [ErrParse].
func (e *ParseError) Unwrap() error { return ErrParse }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Kind.String()),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
	}

	if e.Path != "" {
		attrs = append(attrs, slog.String("path", e.Path))
	}

	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}

	return slog.GroupValue(attrs...)
}

// MissingVariableError reports that a requested variable is not defined in
// the environment.
type MissingVariableError struct {
	Name        string
	Message     string
	Suggestions []string
}

// DefaultMessage returns the message used when the caller supplied none.
func DefaultMessage(name string) string {
	return "environment variable '" + name + "' not defined"
}

// Error returns the caller-supplied message, or [DefaultMessage].
func (e *MissingVariableError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return DefaultMessage(e.Name)
}

// Unwrap returns [ErrMissingVariable].
func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }

// LogValue implements slog.LogValuer.
func (e *MissingVariableError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Error()),
		slog.String("name", e.Name),
	}

	if len(e.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", e.Suggestions))
	}

	return slog.GroupValue(attrs...)
}
