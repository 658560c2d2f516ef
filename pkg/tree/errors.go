package tree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/treeops/pkg/filesystem"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSymbolicLink indicates that a permission change encountered a
	// symbolic link and was aborted.
	ErrSymbolicLink = filesystem.ErrSymbolicLink

	// errEmptyOwnership indicates an empty owner or group specification.
	errEmptyOwnership = errors.New("empty specification")
)

// ArgumentError indicates that an operation was invoked with an invalid
// argument. It is returned before any filesystem access takes place.
type ArgumentError struct {
	// Argument is the name of the offending argument.
	Argument string
	// Value is a textual representation of the offending value.
	Value string
	// Err is the reason that the value was rejected.
	Err error
}

// Error implements error.Error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Argument, e.Value, e.Err)
}

// Unwrap returns the reason that the value was rejected.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is allows ArgumentError to match ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// OperationError records a failed filesystem operation on a single path.
type OperationError struct {
	// Op is the operation that failed, e.g. "open", "mkdir", or "chmod".
	Op string
	// Path is the path on which the operation failed.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *OperationError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// validatePath verifies that a path argument is usable.
func validatePath(argument, path string) error {
	if path == "" {
		return &ArgumentError{Argument: argument, Value: path, Err: errors.New("empty path")}
	} else if strings.IndexByte(path, 0) != -1 {
		return &ArgumentError{Argument: argument, Value: path, Err: errors.New("path contains NUL byte")}
	}
	return nil
}

// validateMode verifies that a mode argument contains only permission bits
// and the setuid, setgid, and sticky bits.
func validateMode(mode filesystem.Mode) error {
	if mode&^filesystem.ModePermissionsSpecialMask != 0 {
		return &ArgumentError{Argument: "mode", Value: mode.String(), Err: errors.New("mode contains disallowed bits")}
	}
	return nil
}

// validateCopyPaths verifies that target isn't source or lexically nested
// within it. Symbolic links aren't resolved for this check.
func validateCopyPaths(source, target string) error {
	absoluteSource, err := filepath.Abs(source)
	if err != nil {
		return nil
	}
	absoluteTarget, err := filepath.Abs(target)
	if err != nil {
		return nil
	}
	relative, err := filepath.Rel(absoluteSource, absoluteTarget)
	if err != nil {
		return nil
	}
	if relative == "." || !(relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator))) {
		return &ArgumentError{Argument: "target", Value: target, Err: errors.New("target is or lies within source")}
	}
	return nil
}
