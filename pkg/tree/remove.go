package tree

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
)

// Remove removes the entry at path. Directories are removed recursively, with
// every entry removed before its parent. Non-directories, including symbolic
// links, are unlinked. A missing path is not an error.
//
// Remove succeeds if and only if path doesn't resolve to a directory once it
// completes. Failures to remove individual entries are logged as warnings and
// only reported (as part of the returned error) if that final check fails.
func (m *Manager) Remove(path string) error {
	// Validate arguments.
	if err := validatePath("path", path); err != nil {
		return err
	}

	// Create a sublogger.
	logger := m.logger.Sublogger("remove")
	logger.Debugf("Removing %s", path)

	// Determine the type of the entry without following symbolic links.
	metadata, err := filesystem.ReadMetadata(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &OperationError{Op: "stat", Path: path, Err: err}
	}

	// Perform the removal.
	var failures error
	if metadata.IsDirectory() {
		failures = m.removeDirectory(path, logger)
	} else if err := filesystem.RemoveFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		failures = &OperationError{Op: "remove", Path: path, Err: err}
		logger.Warn(failures)
	}

	// Check whether or not the removal succeeded.
	if filesystem.IsDirectory(path) {
		return &OperationError{
			Op:   "remove",
			Path: path,
			Err:  multierr.Append(errors.New("directory still exists"), failures),
		}
	}

	// Success.
	return nil
}

// removeDirectory removes a directory tree in post-order, continuing past
// failures. It returns the combined failures.
func (m *Manager) removeDirectory(root string, logger *logging.Logger) error {
	var failures error
	fail := func(err error) {
		logger.Warn(err)
		failures = multierr.Append(failures, err)
	}

	// removeEmptyDirectory removes a directory whose contents have been
	// processed.
	removeEmptyDirectory := func(path string) {
		logger.Tracef("Removing directory %s", path)
		if err := filesystem.RemoveDirectory(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			fail(&OperationError{Op: "remove", Path: path, Err: err})
		}
	}

	// Scan the root. If that fails, then the best we can do is attempt to
	// remove it in case it's already empty.
	top, err := m.push(root, "", false)
	if err != nil {
		fail(err)
		removeEmptyDirectory(root)
		return failures
	}
	stack := []*frame{top}

	// Perform the traversal.
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		entry, ok := current.next()
		if !ok {
			stack = stack[:len(stack)-1]
			removeEmptyDirectory(current.path)
			continue
		}
		path := filepath.Join(current.path, entry.Name)
		if entry.IsDirectory() {
			if child, err := m.push(path, "", false); err != nil {
				fail(err)
				removeEmptyDirectory(path)
			} else {
				stack = append(stack, child)
			}
		} else {
			logger.Tracef("Removing %s", path)
			if err := filesystem.RemoveFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				fail(&OperationError{Op: "remove", Path: path, Err: err})
			}
		}
	}

	// Done.
	return failures
}
