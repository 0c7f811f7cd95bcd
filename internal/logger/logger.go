// Package logger implements a leveled logger writing to the error stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/superfly/herokuctl/internal/buildinfo"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// EnvKey names the environment variable the level is read from.
const EnvKey = "LOG_LEVEL"

type Logger struct {
	out   io.Writer
	level Level
	au    aurora.Aurora
}

// New returns a Logger writing entries of at least the given level to out,
// without color.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		out:   out,
		level: level,
		au:    aurora.NewAurora(false),
	}
}

// FromEnv returns a Logger writing to out at the level LOG_LEVEL names.
// Development builds default to Debug, others to Info. LOG_LEVEL=trace is
// treated as Debug.
func FromEnv(out io.Writer) *Logger {
	return New(out, levelFromEnv())
}

func levelFromEnv() Level {
	lit, ok := os.LookupEnv(EnvKey)
	if !ok && buildinfo.IsDev() {
		return Debug
	}

	switch strings.ToLower(lit) {
	case "debug", "trace":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// WithColor returns a copy of l which colors level labels when enabled is
// set.
func (l *Logger) WithColor(enabled bool) *Logger {
	c := *l
	c.au = aurora.NewAurora(enabled)

	return &c
}

func (l *Logger) label(level Level) aurora.Value {
	switch level {
	case Warn:
		return l.au.Yellow(level)
	default:
		return l.au.Faint(level)
	}
}

func (l *Logger) write(level Level, msg string) {
	if level < l.level {
		return
	}

	fmt.Fprintln(l.out, l.label(level), msg)
}

func (l *Logger) Debug(v ...interface{}) {
	l.write(Debug, fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level <= Debug {
		l.write(Debug, fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= Warn {
		l.write(Warn, fmt.Sprintf(format, v...))
	}
}
