package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/dotenvgen/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.SetDefault(log.Make(nil)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"build", "--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=error", "--log-caller", "--no-log-pretty"},
			want: logConfig{Level: "error", Caller: true},
		},
		{
			name: "boolean assignment",
			args: []string{"--log-pretty=true", "--no-log-caller=false"},
			want: logConfig{Pretty: true, Caller: true},
		},
		{
			name: "missing value",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level=debug"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogConfig_ScanConfiguresLogger(t *testing.T) {
	t.Cleanup(func() { log.SetDefault(log.Make(nil)) })

	var cfg logConfig

	cfg.scan([]string{"--log-level=debug", "--log-format=json"})

	assert.Equal(t, log.LevelDebug, log.Default().Level())
	assert.Equal(t, log.FormatJSON, log.Default().Format())
}
