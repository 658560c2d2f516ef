//go:build !windows

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// RemoveFile removes the non-directory entry (including a symbolic link) at
// the specified path.
func RemoveFile(path string) error {
	if err := unlinkatRetryingOnEINTR(unix.AT_FDCWD, path, 0); err != nil {
		return &os.PathError{Op: "unlink", Path: path, Err: err}
	}
	return nil
}

// RemoveDirectory removes the directory at the specified path. The directory
// must be empty.
func RemoveDirectory(path string) error {
	if err := unlinkatRetryingOnEINTR(unix.AT_FDCWD, path, unix.AT_REMOVEDIR); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}
