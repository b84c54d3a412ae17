package dotenv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// String returns the entry as a single NAME=VALUE line that [Parse] reads
// back to the same name and value. The value is written with [FormatValue].
func (e Entry) String() string {
	return e.Name + "=" + FormatValue(e.Value, e.Quote)
}

// FormatValue returns value written in the quoting style q if that style can
// represent it. Otherwise it falls back to single quotes, and then to double
// quotes with escapes, which can represent any value.
func FormatValue(value string, q Quote) string {
	switch {
	case q == QuoteNone && bareSafe(value):
		return value

	case q != QuoteDouble && singleSafe(value):
		return "'" + value + "'"
	}

	var sb strings.Builder

	sb.Grow(len(value) + 2)
	sb.WriteByte('"')

	for i, r := range value {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			_, size := utf8.DecodeRuneInString(value[i:])
			sb.WriteString(value[i : i+size])
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// bareSafe reports whether value survives as an unquoted value.
func bareSafe(value string) bool {
	if value == "" {
		return true
	}

	first, _ := utf8.DecodeRuneInString(value)
	last, _ := utf8.DecodeLastRuneInString(value)

	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}

	switch first {
	case '\'', '"', '#':
		return false
	}

	prevSpace := false

	for _, r := range value {
		if r == '\n' || r == '\r' || (r == '#' && prevSpace) {
			return false
		}

		prevSpace = unicode.IsSpace(r)
	}

	return true
}

// singleSafe reports whether value survives inside single quotes.
func singleSafe(value string) bool {
	return !strings.ContainsAny(value, "'\n\r")
}
