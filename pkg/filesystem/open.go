package filesystem

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedOpenType indicates that the filesystem entry at the
	// specified path is not of the type that the operation requires.
	ErrUnsupportedOpenType = errors.New("unsupported open type")
	// ErrSymbolicLink indicates that an operation refused to act on a symbolic
	// link.
	ErrSymbolicLink = errors.New("symbolic link encountered")
)
