// Bin2header - binary file to C++ header converter
// logging_test.go - Unit tests for the console logger
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level  int
		stdout string
		stderr string
	}{
		{LevelError, "success\n", "error\n"},
		{LevelWarning, "success\n", "warning\nerror\n"},
		{LevelInfo, "info\nsuccess\n", "warning\nerror\n"},
		{LevelDebug, "debug\ninfo\nsuccess\n", "warning\nerror\n"},
	}

	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		l := NewLogger(&stdout, &stderr, tt.level)
		l.NoColor = true
		l.Debug("debug")
		l.Info("info")
		l.Warning("warning")
		l.Success("success")
		l.Error("error")

		assert.Equal(t, tt.stdout, stdout.String(), "level %d", tt.level)
		assert.Equal(t, tt.stderr, stderr.String(), "level %d", tt.level)
	}
}

func TestLoggerKeepsPercentInArguments(t *testing.T) {
	var stdout bytes.Buffer
	l := NewLogger(&stdout, &stdout, LevelInfo)
	l.NoColor = true
	l.Success("Success: Generated '%s'", "100%d.h")
	assert.Equal(t, "Success: Generated '100%d.h'\n", stdout.String())
}

func TestLoggerNoColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })
	color.NoColor = false

	var colored, plain bytes.Buffer
	NewLogger(&colored, &colored, LevelInfo).Error("boom")
	assert.Contains(t, colored.String(), "\x1b[")

	l := NewLogger(&plain, &plain, LevelInfo)
	l.NoColor = true
	l.Error("boom")
	assert.Equal(t, "boom\n", plain.String())
	assert.False(t, color.NoColor, "logger must not change the global colour setting")
}
