package logging

import (
	"fmt"
)

// Level represents a log level. Levels are ordered so that a logger configured
// at a given level emits messages at that level and every level below it.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only operation failures are logged.
	LevelError
	// LevelWarn indicates that failures on individual entries within a tree
	// operation are also logged.
	LevelWarn
	// LevelInfo indicates that a summary of each tree operation is logged.
	LevelInfo
	// LevelDebug indicates that each entry visited by a tree operation is
	// logged.
	LevelDebug
	// LevelTrace indicates that individual system calls are logged.
	LevelTrace
)

// levelNames maps levels to their textual names.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a string-based representation of a log level to the
// appropriate Level value. It returns a boolean indicating whether or not the
// conversion was valid. If the name is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	for level, levelName := range levelNames {
		if name == levelName {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// abbreviation returns the fixed-width tag used to prefix log lines.
func (l Level) abbreviation() string {
	switch l {
	case LevelError:
		return "E"
	case LevelWarn:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	case LevelTrace:
		return "T"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	if level, ok := NameToLevel(string(text)); !ok {
		return fmt.Errorf("invalid log level: %s", string(text))
	} else {
		*l = level
	}
	return nil
}
