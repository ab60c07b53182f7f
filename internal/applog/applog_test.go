package applog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_TextFormatWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("indexed project", "files", 12)

	out := buf.String()
	assert.Contains(t, out, "indexed project")
	assert.Contains(t, out, "files=12")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("reindex complete")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNew_UnrecognizedLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "nonsense", Format: FormatText, Output: &buf})

	logger.Debug("should be suppressed")
	assert.Empty(t, buf.String())

	logger.Info("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestDefault_UsesTextAndInfo(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.NotNil(t, cfg.Output)
}

func TestNew_NilOutputStillBuildsLogger(t *testing.T) {
	logger := New(Config{Level: LevelInfo, Format: FormatText})
	assert.NotNil(t, logger)
	assert.IsType(t, &slog.Logger{}, logger)
}
