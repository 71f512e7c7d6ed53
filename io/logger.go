package bossyio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel orders messages by severity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// levelStyle is how one level is announced.
type levelStyle struct {
	name   string
	symbol string
	paint  func(Palette, string) string
}

var levelStyles = [...]levelStyle{
	LevelDebug:   {"DEBUG", "●", Palette.Magenta},
	LevelInfo:    {"INFO", "◆", Palette.Cyan},
	LevelSuccess: {"SUCCESS", "✓", Palette.Green},
	LevelWarning: {"WARN", "▲", Palette.Yellow},
	LevelError:   {"ERROR", "✗", Palette.Red},
}

func (l LogLevel) style() (levelStyle, bool) {
	if l < 0 || int(l) >= len(levelStyles) {
		return levelStyle{}, false
	}
	return levelStyles[l], true
}

func (l LogLevel) String() string {
	if s, ok := l.style(); ok {
		return s.name
	}
	return "UNKNOWN"
}

// LogFormat selects the prefix put in front of each message.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] [ERROR] ...
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

// Logger writes levelled messages through an IOManager. Messages below
// the minimum level are dropped, so a disabled debug trace costs one
// comparison per call.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
}

// NewLogger returns a tagged logger writing through m. Debug messages
// are hidden until WithLevel(LevelDebug) is called; warnings and errors
// go to m.Err().
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
	}
}

func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel sets the minimum level that is written.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp puts the current time after the prefix.
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat takes a time.Format layout.
func (l *Logger) WithTimeFormat(layout string) *Logger {
	l.timeFormat = layout
	return l
}

// ErrorsToStderr(false) sends every level to the output stream.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Enabled reports whether messages at level are written. A nil logger
// writes nothing.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level >= l.minLevel
}

// Log formats and writes one line at level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	line := l.render(level, fmt.Sprintf(format, args...))
	fmt.Fprintln(l.writer(level), line)
}

func (l *Logger) prefix(level LogLevel) string {
	s, ok := level.style()
	if !ok {
		return ""
	}
	switch l.format {
	case LogFormatTagged:
		return "[" + s.name + "]"
	case LogFormatSymbols:
		return s.symbol
	default:
		return ""
	}
}

func (l *Logger) render(level LogLevel, msg string) string {
	// whitespace-only messages pass through untouched
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var b strings.Builder
	if p := l.prefix(level); p != "" {
		b.WriteString(p)
		b.WriteByte(' ')
	}
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(msg)

	s, ok := level.style()
	if !ok {
		return b.String()
	}
	return s.paint(l.io.Palette(), b.String())
}

func (l *Logger) writer(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
