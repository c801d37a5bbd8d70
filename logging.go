// Bin2header - binary file to C++ header converter
// logging.go - Levelled, coloured console logger
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Log levels
const (
	LevelError   = 0
	LevelWarning = 1
	LevelInfo    = 2
	LevelDebug   = 3
)

// Logger writes info, debug and success messages to out and warnings and
// errors to errOut
type Logger struct {
	Level   int
	NoColor bool // plain output regardless of terminal detection
	out     io.Writer
	errOut  io.Writer
}

// NewLogger creates a logger with the given level
func NewLogger(out, errOut io.Writer, level int) *Logger {
	return &Logger{
		Level:  level,
		out:    out,
		errOut: errOut,
	}
}

func (l *Logger) helper(w io.Writer, format string, a []interface{}, msgColor *color.Color) {
	logMsg := fmt.Sprintf(format, a...)
	if msgColor != nil && !l.NoColor {
		logMsg = msgColor.Sprint(logMsg)
	}
	fmt.Fprintln(w, logMsg)
}

func (l *Logger) Debug(format string, a ...interface{}) {
	if l.Level >= LevelDebug {
		l.helper(l.out, format, a, color.New(color.FgBlue, color.Italic))
	}
}

func (l *Logger) Info(format string, a ...interface{}) {
	if l.Level >= LevelInfo {
		l.helper(l.out, format, a, nil)
	}
}

func (l *Logger) Warning(format string, a ...interface{}) {
	if l.Level >= LevelWarning {
		l.helper(l.errOut, format, a, color.New(color.FgHiYellow))
	}
}

// Success prints a message in green and bold font, regardless of log level
func (l *Logger) Success(format string, a ...interface{}) {
	l.helper(l.out, format, a, color.New(color.FgHiGreen, color.Bold))
}

// Error prints a message in red and bold font, regardless of log level
func (l *Logger) Error(format string, a ...interface{}) {
	l.helper(l.errOut, format, a, color.New(color.FgHiRed, color.Bold))
}
