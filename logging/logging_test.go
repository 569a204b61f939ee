package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/cronies/logging"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, logging.DefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
		ok   bool
	}{
		{"json debug", logging.Config{Level: "debug", Format: "json"}, true},
		{"console error", logging.Config{Level: "error", Format: "console"}, true},
		{"bad level", logging.Config{Level: "loud", Format: "json"}, false},
		{"bad format", logging.Config{Level: "info", Format: "xml"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewWithSinkJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithSink(logging.Config{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", zap.String("op", "map"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "map", entry["op"])
	assert.Contains(t, entry, "ts")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewObserved(t *testing.T) {
	logger, logs := logging.NewObserved(zapcore.WarnLevel)
	logger.Info("ignored")
	logger.Error("seen", zap.Int("n", 1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "seen", entry.Message)
	assert.Equal(t, int64(1), entry.ContextMap()["n"])
}
