//go:build !windows

package filesystem

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// SetMode sets the permission bits (including the setuid, setgid, and sticky
// bits) of the entry at the specified path. It refuses to operate on a
// symbolic link at the leaf position, returning ErrSymbolicLink.
func SetMode(path string, mode Mode) error {
	// Verify that the target isn't a symbolic link.
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(unix.AT_FDCWD, path, &metadata, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &os.PathError{Op: "stat", Path: path, Err: err}
	} else if Mode(metadata.Mode)&ModeTypeMask == ModeTypeSymbolicLink {
		return errors.Wrapf(ErrSymbolicLink, "unable to set mode on %s", path)
	}

	// RACE: The entry could be replaced by a symbolic link between the check
	// above and the mode change below on platforms where fchmodat can't avoid
	// link traversal itself.

	// Set permissions.
	if err := fchmodatRetryingOnEINTR(unix.AT_FDCWD, path, uint32(mode&ModePermissionsSpecialMask), fchmodatNoFollowFlags); err != nil {
		return &os.PathError{Op: "chmod", Path: path, Err: err}
	}

	// Success.
	return nil
}

// SetPermissions sets the ownership and mode of the entry at the specified
// path. Ownership is applied first since changing ownership can clear the
// setuid and setgid bits. A nil ownership specification or a zero mode skips
// the corresponding change.
func SetPermissions(path string, ownership *OwnershipSpecification, mode Mode) error {
	// Set ownership.
	if err := SetOwnership(path, ownership); err != nil {
		return errors.Wrap(err, "unable to set ownership")
	}

	// Set mode.
	if mode != 0 {
		if err := SetMode(path, mode); err != nil {
			return errors.Wrap(err, "unable to set mode")
		}
	}

	// Success.
	return nil
}
