package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T, config *Config) (*Logger, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}
	config.writer = output

	log, err := New(config)
	require.NoError(t, err)
	require.NotNil(t, log)

	return log, output
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		checkFunc func(t *testing.T, log *Logger, output *bytes.Buffer)
	}{
		{
			name: "json format emits structured batch attrs",
			config: &Config{
				Level:  "info",
				Format: "json",
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Info("Batch processed",
					slog.String("source", "linkedin"),
					slog.Int("unique", 42),
				)

				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

				assert.Equal(t, "INFO", entry["level"])
				assert.Equal(t, "Batch processed", entry["msg"])
				assert.Equal(t, "linkedin", entry["source"])
				assert.Equal(t, float64(42), entry["unique"])
				assert.Contains(t, entry, "time")
			},
		},
		{
			name: "info level filters debug records",
			config: &Config{
				Level:  "info",
				Format: "json",
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Debug("Skipping posting without external id")
				log.Info("Deduplication pass complete", slog.Int("deleted", 3))

				lines := strings.Split(strings.TrimSpace(output.String()), "\n")
				require.Len(t, lines, 1)

				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
				assert.Equal(t, "Deduplication pass complete", entry["msg"])
			},
		},
		{
			name: "warn level filters info records",
			config: &Config{
				Level:  "warn",
				Format: "json",
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Info("Starting deduplication pass")
				log.Warn("Deduplication already in progress, skipping")

				lines := strings.Split(strings.TrimSpace(output.String()), "\n")
				require.Len(t, lines, 1)
				assert.Contains(t, lines[0], "skipping")
			},
		},
		{
			name: "console format uses tint",
			config: &Config{
				Level:      "info",
				Format:     "console",
				TimeFormat: time.RFC3339,
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Info("Sync service started")

				// tint renders levels as three-letter tags
				assert.Contains(t, output.String(), "INF")
				assert.Contains(t, output.String(), "Sync service started")
			},
		},
		{
			name: "unknown format falls back to json",
			config: &Config{
				Level:  "info",
				Format: "logfmt",
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Info("fallback")

				var entry map[string]interface{}
				assert.NoError(t, json.Unmarshal(output.Bytes(), &entry))
			},
		},
		{
			name: "source location attached when enabled",
			config: &Config{
				Level:        "info",
				Format:       "json",
				EnableSource: true,
			},
			checkFunc: func(t *testing.T, log *Logger, output *bytes.Buffer) {
				log.Info("message with source")

				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

				require.Contains(t, entry, "source")
				source := entry["source"].(map[string]interface{})
				assert.Contains(t, source, "file")
				assert.Contains(t, source, "line")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, output := newBufferedLogger(t, tt.config)
			tt.checkFunc(t, log, output)
		})
	}
}

func TestNew_WriterSelection(t *testing.T) {
	t.Run("injected writer wins over output name", func(t *testing.T) {
		output := &bytes.Buffer{}
		log, err := New(&Config{
			Level:  "info",
			Format: "json",
			Output: "stderr",
			writer: output,
		})
		require.NoError(t, err)

		log.Info("captured")
		assert.Contains(t, output.String(), "captured")
	})

	t.Run("stderr output accepted", func(t *testing.T) {
		log, err := New(&Config{Level: "info", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("empty output defaults to stdout", func(t *testing.T) {
		log, err := New(&Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.NotNil(t, log.Logger)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{name: "debug", level: "debug", expected: slog.LevelDebug},
		{name: "info", level: "info", expected: slog.LevelInfo},
		{name: "warn", level: "warn", expected: slog.LevelWarn},
		{name: "warning alias", level: "warning", expected: slog.LevelWarn},
		{name: "error", level: "error", expected: slog.LevelError},
		{name: "unknown defaults to info", level: "verbose", expected: slog.LevelInfo},
		{name: "empty defaults to info", level: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestLogger_WithGroup(t *testing.T) {
	log, output := newBufferedLogger(t, &Config{Level: "info", Format: "json"})

	log.WithGroup("dedup").Info("pass complete", slog.Int("deleted", 7))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

	require.Contains(t, entry, "dedup")
	group := entry["dedup"].(map[string]interface{})
	assert.Equal(t, float64(7), group["deleted"])
}

func TestLogger_WithAttrs(t *testing.T) {
	log, output := newBufferedLogger(t, &Config{Level: "info", Format: "json"})

	workerLog := log.WithAttrs(
		slog.String("worker_id", "host-1-abc"),
		slog.String("queue", "job_postings_queue"),
	)
	workerLog.Info("Worker started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

	assert.Equal(t, "host-1-abc", entry["worker_id"])
	assert.Equal(t, "job_postings_queue", entry["queue"])
	assert.Equal(t, "Worker started", entry["msg"])
}

func TestLogger_With(t *testing.T) {
	log, output := newBufferedLogger(t, &Config{Level: "info", Format: "json"})

	log.With(slog.String("service", "sync-service")).Info("shutdown complete")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))

	assert.Equal(t, "sync-service", entry["service"])
	assert.Equal(t, "shutdown complete", entry["msg"])
}
