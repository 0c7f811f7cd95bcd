package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn)

	l.Debug("debug line")
	l.Warnf("warn %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.Contains(t, out, "warn 1")

	buf.Reset()
	New(&buf, Error).Warnf("dropped")
	assert.Empty(t, buf.String())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	assert.Equal(t, Error, FromEnv(nil).level)

	t.Setenv("LOG_LEVEL", "trace")
	assert.Equal(t, Debug, FromEnv(nil).level)

	t.Setenv("LOG_LEVEL", "bogus")
	assert.Equal(t, Info, FromEnv(nil).level)
}

func TestContext(t *testing.T) {
	l := New(nil, Info)

	assert.Same(t, l, FromContext(NewContext(context.Background(), l)))
	assert.Panics(t, func() { _ = FromContext(context.Background()) })
	assert.NotPanics(t, func() { MaybeFromContext(context.Background()).Warnf("dropped") })
}

func TestLabels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Debug)

	l.Debugf("a %d", 1)
	l.Debug("b")
	l.Warnf("c %s", "d")

	assert.Equal(t, "DEBUG a 1\nDEBUG b\nWARN c d\n", buf.String())
}

func TestWithColor(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Info)

	l.WithColor(true).Warnf("boom")
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	l.Warnf("boom")
	assert.Equal(t, "WARN boom\n", buf.String())
}
