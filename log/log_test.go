package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != DefaultLevel {
		t.Errorf("level = %v, want %v", logger.Level(), DefaultLevel)
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("format = %v, want %v", logger.Format(), DefaultFormat)
	}

	if logger.caller != DefaultCaller || logger.pretty != DefaultPretty {
		t.Errorf("caller = %v pretty = %v", logger.caller, logger.pretty)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		log   func(Logger)
		want  bool
	}{
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("msg") }, true},
		{"trace at debug", LevelDebug, func(l Logger) { l.Trace("msg") }, false},
		{"debug at debug", LevelDebug, func(l Logger) { l.Debug("msg") }, true},
		{"info at warn", LevelWarn, func(l Logger) { l.Info("msg") }, false},
		{"warn at warn", LevelWarn, func(l Logger) { l.Warn("msg") }, true},
		{"error at warn", LevelWarn, func(l Logger) { l.Error("msg") }, true},
		{"warn at error", LevelError, func(l Logger) { l.Warn("msg") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := strings.Contains(buf.String(), "msg"); got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithLevel(LevelTrace),
		WithTimeLayout("RFC3339"),
	)

	logger.TraceContext(context.Background(), "generated",
		slog.String("file", "dotenv.go"),
		slog.Int("constants", 3),
	)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", rec["level"])
	}

	if rec["msg"] != "generated" || rec["file"] != "dotenv.go" {
		t.Errorf("record = %v", rec)
	}

	if rec["constants"] != float64(3) {
		t.Errorf("constants = %v", rec["constants"])
	}

	if _, ok := rec["time"].(string); !ok {
		t.Errorf("time = %v, want a formatted string", rec["time"])
	}
}

func TestLogger_NoTimestampByDefault(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithFormat(FormatJSON)).Warn("x")

	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("unexpected timestamp in %q", buf.String())
	}
}

func TestLogger_PrettyText(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithPretty(true))
	logger.With(slog.String("cmd", "build")).Info("wrote file",
		slog.String("path", "dotenv init.go"),
		slog.Group("entries", slog.Int("count", 2)),
	)

	got := buf.String()
	want := `INFO wrote file cmd=build path="dotenv init.go" entries.count=2` + "\n"

	// A bytes.Buffer is not a terminal so no escape sequences are written.
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestLogger_PlainText(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithPretty(false)).Error("failed", slog.String("k", "v"))

	got := buf.String()
	if !strings.Contains(got, "level=ERROR") || !strings.Contains(got, "k=v") {
		t.Errorf("got %q", got)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true)).Warn("here")

	if !strings.Contains(buf.String(), "log/log_test.go:") {
		t.Errorf("expected caller location, got %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("base level changed to %v", base.Level())
	}

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("wrapped logger did not write: %q", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Error("dropped")
	l = l.With(slog.String("a", "b"))

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero Logger should report defaults")
	}

	if l.Enabled(context.Background(), LevelError) {
		t.Error("zero Logger should not be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"warn+1", LevelWarn + 1},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	var levels []string
	for l := range Levels() {
		levels = append(levels, l)
	}

	if strings.Join(levels, ",") != "trace,debug,info,warn,error" {
		t.Errorf("levels = %v", levels)
	}

	var formats []string
	for f := range Formats() {
		formats = append(formats, f)
	}

	if strings.Join(formats, ",") != "text,json" {
		t.Errorf("formats = %v", formats)
	}
}

func TestMakeFormatTime(t *testing.T) {
	for _, layout := range []string{"", "  ", "none", "NONE"} {
		if makeFormatTime(layout)(testTime) != "" {
			t.Errorf("layout %q should disable timestamps", layout)
		}
	}

	if got := makeFormatTime("kitchen")(testTime); got != "3:04PM" {
		t.Errorf("kitchen = %q", got)
	}

	if got := makeFormatTime("2006")(testTime); got != "2006" {
		t.Errorf("custom = %q", got)
	}
}
