package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/dotenvgen/dotenv"
)

func TestReport_ParseError(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, &dotenv.ParseError{
		Line:   12,
		Column: 5,
		Kind:   dotenv.KindInvalidEscape,
		Text:   `X="a\qb"`,
		Detail: `\q`,
	})

	assert.Equal(t, ""+
		"line 12:5: invalid escape sequence: \\q\n"+
		"12 | X=\"a\\qb\"\n"+
		"   |     ^\n",
		buf.String())
}

func TestReport_ParseErrorWithoutColumn(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, &dotenv.ParseError{Path: "/nowhere/.env", Line: 1, Kind: dotenv.KindMalformedLine, Text: "?"})

	assert.Equal(t, "/nowhere/.env:1: malformed line\n1 | ?\n", buf.String())
}

func TestReport_MissingVariable(t *testing.T) {
	tests := []struct {
		err  *dotenv.MissingVariableError
		want string
	}{
		{
			err:  &dotenv.MissingVariableError{Name: "X"},
			want: "dotenvgen: environment variable 'X' not defined\n",
		},
		{
			err:  &dotenv.MissingVariableError{Name: "HOTS", Suggestions: []string{"HOST"}},
			want: "dotenvgen: environment variable 'HOTS' not defined\n  did you mean HOST?\n",
		},
		{
			err:  &dotenv.MissingVariableError{Name: "P", Message: "set P", Suggestions: []string{"PA", "PB"}},
			want: "dotenvgen: set P\n  did you mean one of PA, PB?\n",
		},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		Report(&buf, tt.err)
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestReport_Other(t *testing.T) {
	var buf bytes.Buffer

	Report(&buf, nil)
	assert.Zero(t, buf.Len())

	Report(&buf, errors.New("boom"))
	assert.Equal(t, "dotenvgen: boom\n", buf.String())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "", indent("abc", 0))
	assert.Equal(t, "  ", indent("abc", 2))
	assert.Equal(t, "\t ", indent("\tx=1", 2))
	assert.Equal(t, "   ", indent("héé", 5))
}
