package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// timestampFormat is the format used for log line timestamps.
const timestampFormat = "2006-01-02 15:04:05.000000"

// sink is the shared output destination for a logger and its subloggers.
type sink struct {
	// lock serializes writes to writer.
	lock sync.Mutex
	// writer is the underlying output stream.
	writer io.Writer
	// colorize indicates whether or not level tags should be colorized.
	colorize bool
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is safe for concurrent
// usage.
type Logger struct {
	// level is the maximum level that the logger will emit.
	level Level
	// scope is the dotted scope of the logger, if any.
	scope string
	// sink is the output destination.
	sink *sink
}

// isTerminal returns whether or not a writer is a terminal.
func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		fd := file.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return false
}

// NewLogger creates a new logger that writes messages at or below the
// specified level to the provided writer. Level tags are colorized only if the
// writer is a terminal and color output hasn't been globally disabled.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level: level,
		sink: &sink{
			writer:   writer,
			colorize: !color.NoColor && isTerminal(writer),
		},
	}
}

// Sublogger creates a new sublogger with the specified name. The sublogger
// shares its parent's level and output.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new scope.
	scope := name
	if l.scope != "" {
		scope = l.scope + "." + name
	}

	// Create the new logger.
	return &Logger{
		level: l.level,
		scope: scope,
		sink:  l.sink,
	}
}

// Level returns the logger's level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// enabled returns whether or not messages at the specified level are emitted.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level != LevelDisabled && level <= l.level
}

// tagColors maps levels to their terminal colors.
var tagColors = map[Level]*color.Color{
	LevelError: color.New(color.FgRed),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgBlue),
	LevelDebug: color.New(color.FgMagenta),
	LevelTrace: color.New(color.FgHiBlack),
}

// output is the internal logging method.
func (l *Logger) output(level Level, message string) {
	// Format the level tag.
	tag := "[" + level.abbreviation() + "]"
	if l.sink.colorize {
		if c, ok := tagColors[level]; ok {
			tag = c.Sprint(tag)
		}
	}

	// Format the scope.
	var scope string
	if l.scope != "" {
		scope = "[" + l.scope + "] "
	}

	// Format the line.
	line := fmt.Sprintf("%s %s %s%s\n", time.Now().Format(timestampFormat), tag, scope, message)

	// Write the line. There's nowhere to report write failures.
	l.sink.lock.Lock()
	io.WriteString(l.sink.writer, line)
	l.sink.lock.Unlock()
}

// Error logs errors with semantics equivalent to fmt.Sprint.
func (l *Logger) Error(v ...interface{}) {
	if l.enabled(LevelError) {
		l.output(LevelError, fmt.Sprint(v...))
	}
}

// Errorf logs errors with semantics equivalent to fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.enabled(LevelError) {
		l.output(LevelError, fmt.Sprintf(format, v...))
	}
}

// Warn logs warnings with semantics equivalent to fmt.Sprint.
func (l *Logger) Warn(v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.output(LevelWarn, fmt.Sprint(v...))
	}
}

// Warnf logs warnings with semantics equivalent to fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.output(LevelWarn, fmt.Sprintf(format, v...))
	}
}

// Info logs information with semantics equivalent to fmt.Sprint.
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(LevelInfo, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(LevelInfo, fmt.Sprintf(format, v...))
	}
}

// Debug logs debugging information with semantics equivalent to fmt.Sprint.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(LevelDebug, fmt.Sprint(v...))
	}
}

// Debugf logs debugging information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(LevelDebug, fmt.Sprintf(format, v...))
	}
}

// Trace logs low-level information with semantics equivalent to fmt.Sprint.
func (l *Logger) Trace(v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.output(LevelTrace, fmt.Sprint(v...))
	}
}

// Tracef logs low-level information with semantics equivalent to fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.output(LevelTrace, fmt.Sprintf(format, v...))
	}
}
