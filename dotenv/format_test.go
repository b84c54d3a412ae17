package dotenv

import (
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value string
		quote Quote
		want  string
	}{
		{"plain", QuoteNone, "plain"},
		{"", QuoteNone, ""},
		{"a#b", QuoteNone, "a#b"},
		{"a #b", QuoteNone, "'a #b'"},
		{" padded ", QuoteNone, "' padded '"},
		{"#hash", QuoteNone, "'#hash'"},
		{"'lead", QuoteNone, `"'lead"`},
		{"plain", QuoteSingle, "'plain'"},
		{"it's", QuoteSingle, `"it's"`},
		{"plain", QuoteDouble, `"plain"`},
		{"a\nb\t\"c\"\\", QuoteNone, `"a\nb\t\"c\"\\"`},
		{"cr\r", QuoteSingle, `"cr\r"`},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.quote); got != tt.want {
			t.Errorf("FormatValue(%q, %v) = %s, want %s", tt.value, tt.quote, got, tt.want)
		}
	}
}

func TestEntry_StringRoundTrip(t *testing.T) {
	values := []string{
		"", "x", "with space", "trailing ", "\tlead", "a # b", "#", "a#",
		`"quoted"`, "'single'", `back\slash`, "multi\nline", "crlf\r\n",
		"héllo wörld", "=equals=", "mixed 'both' \"kinds\"", "raw\xffbyte",
	}

	for _, value := range values {
		for _, quote := range []Quote{QuoteNone, QuoteSingle, QuoteDouble} {
			line := Entry{Name: "K", Value: value, Quote: quote}.String()

			entries, err := Collect(Parse(line))
			if err != nil {
				t.Errorf("%q: parse %s: %v", value, line, err)

				continue
			}

			if len(entries) != 1 || entries[0].Name != "K" || entries[0].Value != value {
				t.Errorf("%q: %s parsed as %+v", value, line, entries)
			}
		}
	}
}
