//go:build !windows

package filesystem

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// MakeDirectories creates the directory at the specified path along with any
// missing parent directories, all using the specified mode (subject to the
// process umask). It succeeds without modification if the path already
// resolves to a directory.
func MakeDirectories(path string, mode Mode) error {
	// If the path already resolves to a directory, then there's nothing to do.
	// If it resolves to something else, then we can't proceed.
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(unix.AT_FDCWD, path, &metadata, 0); err == nil {
		if Mode(metadata.Mode)&ModeTypeMask == ModeTypeDirectory {
			return nil
		}
		return &os.PathError{Op: "mkdir", Path: path, Err: unix.ENOTDIR}
	}

	// Ensure that the parent exists. The recursion depth here is bounded by
	// the number of path components.
	if parent := filepath.Dir(path); parent != path && parent != "." {
		if err := MakeDirectories(parent, mode); err != nil {
			return err
		}
	}

	// Create the directory. If creation fails but the directory now exists
	// (e.g. a trailing separator or a concurrent creation), then treat that as
	// success.
	if err := mkdiratRetryingOnEINTR(unix.AT_FDCWD, path, uint32(mode&ModePermissionsSpecialMask)); err != nil {
		if IsDirectory(path) {
			return nil
		}
		return &os.PathError{Op: "mkdir", Path: path, Err: err}
	}

	// Success.
	return nil
}
