package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/manchego/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{in: "debug", want: slog.LevelDebug, wantOK: true},
		{in: "INFO", want: slog.LevelInfo, wantOK: true},
		{in: "", want: slog.LevelInfo, wantOK: true},
		{in: "warn", want: slog.LevelWarn, wantOK: true},
		{in: "error", want: slog.LevelError, wantOK: true},
		{in: "verbose", want: slog.LevelInfo, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logging.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New("warn", "json", &buf)
	logger.Info("dropped")
	logger.Warn("kept", "operation_id", "transactions_import_1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "transactions_import_1", entry["operation_id"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.New("loud", "text", &buf)
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "invalid LOG_LEVEL")
	assert.NotContains(t, out, "hidden")
}
