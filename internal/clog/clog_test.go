package clog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcvoid/pjson/internal/clog"
)

func TestParseLevel(t *testing.T) {
	lvl, err := clog.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = clog.ParseLevel("nope")
	assert.ErrorIs(t, err, clog.ErrUnknownLogLevel)
}

func TestParseFormat(t *testing.T) {
	f, err := clog.ParseFormat("logfmt")
	require.NoError(t, err)
	assert.Equal(t, clog.FormatLogfmt, f)

	_, err = clog.ParseFormat("xml")
	assert.ErrorIs(t, err, clog.ErrUnknownLogFormat)
}

func TestNew_WritesJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := clog.New(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNew_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	logger, err := clog.New(&buf, "warn", "logfmt")
	require.NoError(t, err)
	logger.Warn("careful")
	assert.Contains(t, buf.String(), `msg=careful`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := clog.New(&bytes.Buffer{}, "verbose", "json")
	assert.ErrorIs(t, err, clog.ErrUnknownLogLevel)
}
