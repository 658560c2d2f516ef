//go:build !windows

package filesystem

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// metadataFromStat converts raw stat information to Metadata.
func metadataFromStat(name string, metadata *unix.Stat_t) *Metadata {
	return &Metadata{
		Name: name,
		Mode: Mode(metadata.Mode),
	}
}

// ReadMetadata queries metadata for the entry at the specified path without
// following a symbolic link at the leaf position of the path (intermediate
// components are still resolved). Errors are returned unwrapped so that they
// can be matched against os.ErrNotExist.
func ReadMetadata(path string) (*Metadata, error) {
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(unix.AT_FDCWD, path, &metadata, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return nil, err
	}
	return metadataFromStat(filepath.Base(path), &metadata), nil
}

// IsDirectory indicates whether or not the specified path resolves to a
// directory. Unlike ReadMetadata, it follows a symbolic link at the leaf
// position. Any query failure is reported as false.
func IsDirectory(path string) bool {
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(unix.AT_FDCWD, path, &metadata, 0); err != nil {
		return false
	}
	return Mode(metadata.Mode)&ModeTypeMask == ModeTypeDirectory
}
