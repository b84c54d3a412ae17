package dotenv

import (
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote records how a value was written in the source file.
type Quote int

const (
	QuoteNone   Quote = iota // none
	QuoteSingle              // single
	QuoteDouble              // double
)

// Entry is one resolved assignment.
type Entry struct {
	Name  string
	Value string
	Line  int
	Quote Quote
}

// byteOrderMark is stripped from the start of the input.
const byteOrderMark = "\ufeff"

// exportKeyword is accepted and discarded in front of a variable name.
const exportKeyword = "export"

// Parse returns a sequence over the assignments in src, in file order.
//
// Each meaningful line yields either an [Entry] and a nil error, or a zero
// Entry and a [*ParseError]. A parse error does not end the sequence, so a
// caller may report every bad line in one pass. Blank lines and full-line
// comments yield nothing. Duplicate names are yielded as they appear.
//
// The sequence is lazy and may be ranged over more than once; each pass
// re-reads src from the beginning.
func Parse(src string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		num := 0

		for text := range strings.Lines(src) {
			num++

			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")

			if num == 1 {
				text = strings.TrimPrefix(text, byteOrderMark)
			}

			if isIgnored(text) {
				continue
			}

			s := scanner{text: text, line: num}

			entry, err := s.parseLine()
			if err != nil {
				if !yield(Entry{}, err) {
					return
				}

				continue
			}

			if !yield(entry, nil) {
				return
			}
		}
	}
}

// ParseReader reads all of r and returns the sequence produced by [Parse].
func ParseReader(r io.Reader) (iter.Seq2[Entry, error], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err)
	}

	return Parse(string(data)), nil
}

// IsIdentifier reports whether s is a valid variable name: an ASCII letter or
// underscore followed by any number of ASCII letters, digits and underscores.
func IsIdentifier(s string) bool {
	return invalidAt(s) < 0
}

// invalidAt returns the byte offset of the first rune in s that breaks the
// identifier grammar, or -1 if s is a valid identifier.
func invalidAt(s string) int {
	if s == "" {
		return 0
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return i
		}
	}

	return -1
}

// isIgnored reports whether a line is blank or a full-line comment.
func isIgnored(text string) bool {
	trimmed := strings.TrimLeftFunc(text, isSpace)

	return trimmed == "" || trimmed[0] == '#'
}

func isSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// scanner holds the state for parsing a single line.
type scanner struct {
	text string
	pos  int
	line int
}

// parseLine parses: [export] NAME [= VALUE] [# comment].
func (s *scanner) parseLine() (Entry, error) {
	s.skipSpace()
	s.skipExport()

	start, col := s.pos, s.column()

	for !s.eol() && s.peek() != '=' && !isSpace(s.peek()) {
		s.advance()
	}

	name := s.text[start:s.pos]
	if name == "" {
		return Entry{}, s.fail(KindMalformedLine, col, "missing variable name")
	}

	if at := invalidAt(name); at >= 0 {
		return Entry{}, s.fail(
			KindInvalidIdentifier,
			col+utf8.RuneCountInString(name[:at]),
			strconv.Quote(name),
		)
	}

	entry := Entry{Name: name, Line: s.line}

	s.skipSpace()

	switch {
	case s.eol(), s.peek() == '#':
		return entry, nil

	case s.peek() == '=':
		s.advance()

	default:
		return Entry{}, s.fail(
			KindMalformedLine,
			s.column(),
			"expected '=' after "+name,
		)
	}

	s.skipSpace()

	start = s.pos

	value, quote, err := s.parseValue()
	if err != nil {
		return Entry{}, err
	}

	// The environment cannot hold a NUL byte, and escapes never produce one.
	if strings.IndexByte(value, 0) >= 0 {
		s.pos = start + strings.IndexByte(s.text[start:], 0)

		return Entry{}, s.fail(KindMalformedLine, s.column(), "NUL byte in value")
	}

	entry.Value = value
	entry.Quote = quote

	return entry, nil
}

// skipExport discards a leading export keyword when it is followed by
// whitespace and a name. "export=1" and a bare "export" name the variable
// export itself.
func (s *scanner) skipExport() {
	rest := s.text[s.pos:]
	if !strings.HasPrefix(rest, exportKeyword) {
		return
	}

	saved := s.pos
	s.pos += len(exportKeyword)

	if s.eol() || !isSpace(s.peek()) {
		s.pos = saved

		return
	}

	s.skipSpace()

	if s.eol() || s.peek() == '=' || s.peek() == '#' {
		s.pos = saved
	}
}

func (s *scanner) parseValue() (string, Quote, error) {
	switch s.peek() {
	case '\'':
		value, err := s.parseSingleQuoted()

		return value, QuoteSingle, err

	case '"':
		value, err := s.parseDoubleQuoted()

		return value, QuoteDouble, err

	default:
		return s.parseUnquoted(), QuoteNone, nil
	}
}

// parseUnquoted captures text up to a '#' that starts the value or follows
// whitespace. Trailing whitespace is trimmed.
func (s *scanner) parseUnquoted() string {
	start := s.pos
	prevSpace := true

	for !s.eol() {
		r := s.peek()
		if r == '#' && prevSpace {
			break
		}

		prevSpace = isSpace(r)

		s.advance()
	}

	return strings.TrimRightFunc(s.text[start:s.pos], isSpace)
}

// parseSingleQuoted captures text verbatim up to the closing quote.
func (s *scanner) parseSingleQuoted() (string, error) {
	col := s.column()

	s.advance() // opening quote

	start := s.pos

	for !s.eol() && s.peek() != '\'' {
		s.advance()
	}

	if s.eol() {
		return "", s.fail(KindUnterminatedQuote, col, "missing closing '")
	}

	value := s.text[start:s.pos]

	s.advance() // closing quote

	return value, s.trailer()
}

// parseDoubleQuoted captures text up to the closing quote, replacing the
// escapes \n \r \t \" and \\. Any other escape is an error.
func (s *scanner) parseDoubleQuoted() (string, error) {
	col := s.column()

	s.advance() // opening quote

	var sb strings.Builder

	for {
		if s.eol() {
			return "", s.fail(KindUnterminatedQuote, col, `missing closing "`)
		}

		r := s.peek()

		if r == '"' {
			s.advance()

			break
		}

		if r != '\\' {
			_, size := utf8.DecodeRuneInString(s.text[s.pos:])
			sb.WriteString(s.text[s.pos : s.pos+size])
			s.advance()

			continue
		}

		escCol := s.column()

		s.advance() // backslash

		if s.eol() {
			return "", s.fail(KindUnterminatedQuote, col, `missing closing "`)
		}

		switch e := s.peek(); e {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"', '\\':
			sb.WriteRune(e)
		default:
			return "", s.fail(KindInvalidEscape, escCol, `\`+string(e))
		}

		s.advance()
	}

	return sb.String(), s.trailer()
}

// trailer accepts only whitespace and an optional comment after a closing
// quote.
func (s *scanner) trailer() error {
	s.skipSpace()

	if s.eol() || s.peek() == '#' {
		return nil
	}

	return s.fail(
		KindMalformedLine,
		s.column(),
		"unexpected text after closing quote",
	)
}

func (s *scanner) fail(kind ErrorKind, col int, detail string) *ParseError {
	return &ParseError{
		Line:   s.line,
		Column: col,
		Kind:   kind,
		Text:   s.text,
		Detail: detail,
	}
}

// Helper methods

func (s *scanner) peek() rune {
	if s.eol() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])

	return r
}

func (s *scanner) advance() {
	if s.eol() {
		return
	}

	_, size := utf8.DecodeRuneInString(s.text[s.pos:])

	s.pos += size
}

func (s *scanner) eol() bool {
	return s.pos >= len(s.text)
}

// column returns the 1-based rune column of the current position.
func (s *scanner) column() int {
	return utf8.RuneCountInString(s.text[:s.pos]) + 1
}

func (s *scanner) skipSpace() {
	for !s.eol() && isSpace(s.peek()) {
		s.advance()
	}
}
