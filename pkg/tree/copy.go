package tree

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
)

// CopyResult summarizes a copy operation.
type CopyResult struct {
	// DirectoriesCreated is the number of target directories created.
	DirectoriesCreated uint64
	// FilesCopied is the number of files whose contents were copied.
	FilesCopied uint64
	// BytesCopied is the total number of bytes copied.
	BytesCopied uint64
	// Failures is the number of entries that couldn't be copied.
	Failures uint64
}

// copier holds the state of a single copy operation.
type copier struct {
	// manager is the parent manager.
	manager *Manager
	// logger is the operation logger.
	logger *logging.Logger
	// result is the running operation summary.
	result *CopyResult
	// failures is the combined failure error.
	failures error
}

// fail records a failure.
func (c *copier) fail(err error) {
	c.logger.Warn(err)
	c.result.Failures++
	c.failures = multierr.Append(c.failures, err)
}

// enterDirectory ensures that target exists as a directory (creating it and
// any missing parents with the specified mode) and scans source. It returns nil
// if source couldn't be scanned.
func (c *copier) enterDirectory(source, target string, mode filesystem.Mode) *frame {
	// Create the target if it isn't already a directory. Existing target
	// directories are merged into. Even if creation fails, we still visit the
	// contents so that each failure is recorded.
	if !filesystem.IsDirectory(target) {
		c.logger.Tracef("Creating directory %s", target)
		if err := filesystem.MakeDirectories(target, mode); err != nil {
			c.fail(&OperationError{Op: "mkdir", Path: target, Err: err})
		} else {
			c.result.DirectoriesCreated++
		}
	}

	// Scan the source.
	top, err := c.manager.push(source, target, false)
	if err != nil {
		c.fail(err)
		return nil
	}
	return top
}

// copyFile copies a non-directory entry. A source that doesn't exist (e.g. a
// dangling symbolic link) is skipped.
func (c *copier) copyFile(source, target string) {
	c.logger.Tracef("Copying %s to %s", source, target)
	if copied, err := filesystem.CopyFileContents(source, target, c.logger); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Debugf("Skipping missing source %s", source)
			return
		}
		c.fail(&OperationError{Op: "copy", Path: source, Err: err})
	} else {
		c.result.FilesCopied++
		c.result.BytesCopied += copied
	}
}

// Copy copies source to target using DefaultDirectoryMode for any directories
// that it creates. See CopyWithMode.
func (m *Manager) Copy(source, target string) (*CopyResult, error) {
	return m.CopyWithMode(source, target, DefaultDirectoryMode)
}

// CopyWithMode copies source to target. If source is a directory, its contents
// are copied recursively into target, with each directory handled before its
// contents. The target directory and any missing parents are created with the
// specified mode, while directories created beneath it use
// DefaultDirectoryMode. Existing target directories are merged into, leaving
// entries without a counterpart in source untouched.
// Non-directory sources have their contents copied, with symbolic links
// followed, and existing target files are overwritten. A missing source is
// skipped.
//
// Failures don't stop the copy. Every failed entry is reported as an
// *OperationError within the combined error, which can be split using
// multierr.Errors. The result is non-nil whenever the arguments are valid.
func (m *Manager) CopyWithMode(source, target string, mode filesystem.Mode) (*CopyResult, error) {
	// Validate arguments.
	if err := validatePath("source", source); err != nil {
		return nil, err
	} else if err := validatePath("target", target); err != nil {
		return nil, err
	} else if err := validateMode(mode); err != nil {
		return nil, err
	} else if err := validateCopyPaths(source, target); err != nil {
		return nil, err
	}

	// Create the copier.
	c := &copier{
		manager: m,
		logger:  m.logger.Sublogger("copy"),
		result:  &CopyResult{},
	}
	c.logger.Debugf("Copying %s to %s with directory mode %s", source, target, mode)

	// Determine the type of the source without following symbolic links.
	metadata, err := filesystem.ReadMetadata(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Debugf("Source %s does not exist", source)
			return c.result, nil
		}
		c.fail(&OperationError{Op: "stat", Path: source, Err: err})
		return c.result, c.failures
	}

	// Handle non-directory sources.
	if !metadata.IsDirectory() {
		c.copyFile(source, target)
		return c.result, c.failures
	}

	// Perform a pre-order traversal of the source directory.
	var stack []*frame
	if top := c.enterDirectory(source, target, mode); top != nil {
		stack = append(stack, top)
	}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		entry, ok := current.next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		childSource := filepath.Join(current.path, entry.Name)
		childTarget := filepath.Join(current.target, entry.Name)
		if entry.IsDirectory() {
			if child := c.enterDirectory(childSource, childTarget, DefaultDirectoryMode); child != nil {
				stack = append(stack, child)
			}
		} else {
			c.copyFile(childSource, childTarget)
		}
	}

	// Log a summary.
	c.logger.Infof("Copied %d files (%d bytes), created %d directories, %d failures",
		c.result.FilesCopied, c.result.BytesCopied, c.result.DirectoriesCreated, c.result.Failures,
	)

	// Done.
	return c.result, c.failures
}
