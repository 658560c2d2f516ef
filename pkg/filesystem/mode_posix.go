//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

const (
	// ModeTypeMask is a bit mask that isolates type information. After masking,
	// the resulting value can be compared with any of the ModeType* values
	// (other than ModeTypeMask).
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeFile represents a file.
	ModeTypeFile = Mode(unix.S_IFREG)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)

	// ModeSetUID is the setuid bit.
	ModeSetUID = Mode(unix.S_ISUID)
	// ModeSetGID is the setgid bit.
	ModeSetGID = Mode(unix.S_ISGID)
	// ModeSticky is the sticky bit.
	ModeSticky = Mode(unix.S_ISVTX)
)
