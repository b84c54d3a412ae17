package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/dotenvgen/dotenv"
	"github.com/ardnew/dotenvgen/pkg"
)

// palette holds the styles of a report. The renderer drops colors when the
// output is not a terminal.
type palette struct {
	prog     lipgloss.Style
	location lipgloss.Style
	kind     lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	hint     lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		prog:     r.NewStyle().Bold(true),
		location: r.NewStyle().Bold(true),
		kind:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		gutter:   r.NewStyle().Foreground(lipgloss.Color("8")),
		caret:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		hint:     r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Report writes a human-readable description of err to w.
//
// Parse errors are shown one per line in the "path:line:col: message" form,
// followed by the offending line and a caret under the column. A missing
// variable lists the closest names that are defined.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	p := newPalette(w)

	if pes := dotenv.ParseErrors(err); len(pes) > 0 {
		for _, pe := range pes {
			p.parseError(w, pe)
		}

		return
	}

	var missing *dotenv.MissingVariableError
	if errors.As(err, &missing) {
		fmt.Fprintln(w, p.prog.Render(pkg.Name+":"), missing.Error())

		if hint := suggestion(missing.Suggestions); hint != "" {
			fmt.Fprintln(w, " ", p.hint.Render(hint))
		}

		return
	}

	fmt.Fprintln(w, p.prog.Render(pkg.Name+":"), err.Error())
}

func (p palette) parseError(w io.Writer, pe *dotenv.ParseError) {
	var loc strings.Builder

	if pe.Path != "" {
		loc.WriteString(displayPath(pe.Path))
		loc.WriteByte(':')
	} else {
		loc.WriteString("line ")
	}

	loc.WriteString(strconv.Itoa(pe.Line))

	if pe.Column > 0 {
		loc.WriteByte(':')
		loc.WriteString(strconv.Itoa(pe.Column))
	}

	msg := pe.Kind.String()
	if pe.Detail != "" {
		msg += ": " + pe.Detail
	}

	fmt.Fprintf(w, "%s %s\n", p.location.Render(loc.String()+":"), p.kind.Render(msg))

	if pe.Text == "" {
		return
	}

	num := strconv.Itoa(pe.Line)
	pad := strings.Repeat(" ", len(num))

	fmt.Fprintf(w, "%s %s\n", p.gutter.Render(num+" |"), pe.Text)

	if pe.Column > 0 {
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Render(pad+" |"),
			indent(pe.Text, pe.Column-1),
			p.caret.Render("^"),
		)
	}
}

// indent returns blanks covering the first n runes of text. Tabs are kept
// so the caret lines up with the echoed line.
func indent(text string, n int) string {
	var sb strings.Builder

	for _, r := range text {
		if n <= 0 {
			break
		}

		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}

		n--
	}

	return sb.String()
}

// suggestion formats the names offered for a missing variable.
func suggestion(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return "did you mean " + names[0] + "?"
	default:
		return "did you mean one of " + strings.Join(names, ", ") + "?"
	}
}

// displayPath shortens path to be relative to the working directory when it
// lies below it.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}
