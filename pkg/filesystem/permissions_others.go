//go:build !windows && !linux

package filesystem

import (
	"golang.org/x/sys/unix"
)

// fchmodatNoFollowFlags are the flags passed to fchmodat by SetMode.
const fchmodatNoFollowFlags = unix.AT_SYMLINK_NOFOLLOW
