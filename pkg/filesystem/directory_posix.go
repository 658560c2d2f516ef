//go:build !windows

package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/treeops/pkg/logging"
)

// Directory represents an open directory on disk. It is used to scan the
// directory's contents without following symbolic links for the entries it
// reports.
type Directory struct {
	// descriptor is the file descriptor for the directory, designed to be used
	// in conjunction with POSIX *at functions. It is wrapped by the os.File
	// object below (file) and should not be closed directly.
	descriptor int
	// file is an os.File object which wraps the directory descriptor. It is
	// required for its Readdirnames function, since there's no other portable
	// way to do this from Go.
	file *os.File
	// exhausted indicates that the directory's contents have been read and that
	// a seek is required before reading them again.
	exhausted bool
	// logger is the logger for the directory.
	logger *logging.Logger
}

// OpenDirectory opens the directory at the specified path. Unless
// allowSymbolicLinkLeaf is true, the leaf component of the path must not be a
// symbolic link (intermediate components are still resolved). If the path
// doesn't reference a directory, an error is returned.
func OpenDirectory(path string, allowSymbolicLinkLeaf bool, logger *logging.Logger) (*Directory, *Metadata, error) {
	// Open the directory. O_NOFOLLOW causes open to fail with ELOOP if the
	// leaf is a symbolic link, while O_DIRECTORY enforces the type.
	flags := unix.O_RDONLY | unix.O_DIRECTORY | unix.O_CLOEXEC
	if !allowSymbolicLinkLeaf {
		flags |= unix.O_NOFOLLOW
	}
	descriptor, err := openatRetryingOnEINTR(unix.AT_FDCWD, path, flags, 0)
	if err != nil {
		return nil, nil, &os.PathError{Op: "open", Path: path, Err: err}
	}

	// Query metadata for the directory itself.
	var rawMetadata unix.Stat_t
	if err := fstatRetryingOnEINTR(descriptor, &rawMetadata); err != nil {
		if closeErr := closeConsideringEINTR(descriptor); closeErr != nil {
			logger.Warnf("Unable to close directory descriptor: %v", closeErr)
		}
		return nil, nil, errors.Wrap(err, "unable to query directory metadata")
	}
	metadata := metadataFromStat(filepath.Base(path), &rawMetadata)

	// Success.
	return &Directory{
		descriptor: descriptor,
		file:       os.NewFile(uintptr(descriptor), path),
		logger:     logger,
	}, metadata, nil
}

// Close closes the directory.
func (d *Directory) Close() error {
	return d.file.Close()
}

// ReadContentNames queries the directory contents and returns their base names.
// It does not return "." or ".." entries. The ordering of the names is the
// order reported by the operating system.
func (d *Directory) ReadContentNames() ([]string, error) {
	// If we've already performed a read on the directory's contents, then we
	// need to rewind the directory before performing another read.
	if d.exhausted {
		if offset, err := seekConsideringEINTR(d.descriptor, 0, 0); err != nil {
			return nil, fmt.Errorf("unable to reset directory read pointer: %w", err)
		} else if offset != 0 {
			return nil, errors.New("directory offset is non-zero after seek operation")
		}
		d.exhausted = false
	}

	// Read content names. We always mark the directory as exhausted, even if we
	// fail to read it all the way to the end.
	names, err := d.file.Readdirnames(0)
	d.exhausted = true
	if err != nil {
		return nil, err
	}

	// Filter names (without allocating a new slice). The implementation
	// underlying os.File.Readdirnames does filter these out, but that's not
	// guaranteed by its documentation.
	results := names[:0]
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		results = append(results, name)
	}

	// Success.
	return results, nil
}

// readContentMetadata reads metadata for the content within the directory
// specified by name without following symbolic links.
func (d *Directory) readContentMetadata(name string) (*Metadata, error) {
	var metadata unix.Stat_t
	if err := fstatatRetryingOnEINTR(d.descriptor, name, &metadata, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return nil, err
	}
	return metadataFromStat(name, &metadata), nil
}

// ReadContents queries the directory contents and their associated metadata.
// It doesn't return metadata for "." or ".." entries. Entries that disappear
// between listing and the metadata query are omitted.
func (d *Directory) ReadContents() ([]*Metadata, error) {
	// Read content names.
	names, err := d.ReadContentNames()
	if err != nil {
		return nil, fmt.Errorf("unable to read directory content names: %w", err)
	}

	// Allocate the result slice with enough capacity to accommodate all
	// entries.
	results := make([]*Metadata, 0, len(names))

	// Loop over names and grab their individual metadata.
	for _, name := range names {
		if m, err := d.readContentMetadata(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("unable to access content metadata: %w", err)
		} else {
			results = append(results, m)
		}
	}

	// Success.
	return results, nil
}
