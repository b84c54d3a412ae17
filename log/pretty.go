package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler. The renderer drops colors
// when the output is not a terminal.
type palette struct {
	key    lipgloss.Style
	time   lipgloss.Style
	source lipgloss.Style
	levels map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	level := func(color string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	return palette{
		key:    r.NewStyle().Faint(true),
		time:   r.NewStyle().Foreground(lipgloss.Color("8")),
		source: r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		levels: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): level("5"),
			slog.LevelDebug:        level("4"),
			slog.LevelInfo:         level("2"),
			slog.LevelWarn:         level("3"),
			slog.LevelError:        level("1"),
		},
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	best := p.levels[slog.Level(LevelTrace)]

	for _, floor := range []slog.Level{
		slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError,
	} {
		if l >= floor {
			best = p.levels[floor]
		}
	}

	return best
}

// prettyHandler writes one human-oriented line per record:
//
//	[time] LEVEL [source] message key=value ...
type prettyHandler struct {
	opts    *slog.HandlerOptions
	palette palette
	mu      *sync.Mutex
	w       io.Writer
	groups  []string
	attrs   []byte
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:    opts,
		palette: newPalette(w),
		mu:      &sync.Mutex{},
		w:       w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		if a := h.replace(nil, slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			buf.WriteString(h.palette.time.Render(a.Value.String()))
			buf.WriteByte(' ')
		}
	}

	label := h.replace(nil, slog.Any(slog.LevelKey, r.Level)).Value.String()
	buf.WriteString(h.palette.level(r.Level).Render(label))

	if h.opts.AddSource && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		src := filepath.Join(filepath.Base(filepath.Dir(f.File)), filepath.Base(f.File)) +
			":" + strconv.Itoa(f.Line)

		buf.WriteByte(' ')
		buf.WriteString(h.palette.source.Render(src))
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.groups, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var buf bytes.Buffer

	buf.Write(h.attrs)

	for _, a := range attrs {
		h.writeAttr(&buf, h.groups, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		a = h.replace(groups, a)
		a.Value = a.Value.Resolve()
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, sub, ga)
		}

		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	buf.WriteByte(' ')
	buf.WriteString(h.palette.key.Render(key + "="))
	buf.WriteString(quoteValue(a.Value.String()))
}

// quoteValue quotes s when it would otherwise be ambiguous in key=value
// output.
func quoteValue(s string) string {
	if s == "" {
		return `""`
	}

	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}

	return s
}
