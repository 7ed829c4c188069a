package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "test")
	l.Infof("info %s", "test")
	l.Warnf("warn %d", 2)
	l.Errorf("error")

	out := buf.String()
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, "info test")
	assert.Contains(t, out, "warn 2")
	assert.Contains(t, out, `"level":"error"`)
}

func TestNopDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		l := Nop()
		l.Debugf("debug %d", 1)
		l.Warnf("warn")
	})
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Error(t, SetLevel("loud"))
	assert.NoError(t, SetLevel(""))
}

func TestConfigureRejectsUnknownFormat(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	assert.Error(t, Configure("info", "xml"))
	assert.NoError(t, Configure("info", "json"))
}

func TestConfigureSwitchesExistingLoggers(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevConsole := console.Load()
	defer func() {
		zerolog.SetGlobalLevel(prevLevel)
		console.Store(prevConsole)
	}()
	console.Store(false)

	var buf bytes.Buffer
	l := newWithWriter(&buf, "menu")
	l.Warnf("before")
	first := buf.String()
	buf.Reset()

	require.NoError(t, Configure("info", "console"))
	l.Warnf("after")
	second := buf.String()

	assert.True(t, strings.HasPrefix(first, "{"), first)
	assert.Contains(t, first, `"component":"menu"`)
	assert.False(t, strings.HasPrefix(second, "{"), second)
	assert.Contains(t, second, "WRN")
	assert.Contains(t, second, "after")
	assert.Contains(t, second, "component=menu")
}
