package tree

import (
	"path/filepath"

	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
)

// applyRecursively applies change to every entry in the tree rooted at path,
// with each directory changed after its contents. It stops at the first
// failure, and a symbolic link anywhere in the tree (including at path) aborts
// the operation with ErrSymbolicLink before the link is modified.
func (m *Manager) applyRecursively(op, path string, logger *logging.Logger, change func(string) error) error {
	// apply performs the change on a single path.
	apply := func(path string) error {
		logger.Tracef("Applying %s to %s", op, path)
		if err := change(path); err != nil {
			return &OperationError{Op: op, Path: path, Err: err}
		}
		return nil
	}

	// Determine the type of the root without following symbolic links.
	metadata, err := filesystem.ReadMetadata(path)
	if err != nil {
		return &OperationError{Op: "stat", Path: path, Err: err}
	} else if metadata.IsSymbolicLink() {
		return &OperationError{Op: op, Path: path, Err: ErrSymbolicLink}
	} else if !metadata.IsDirectory() {
		return apply(path)
	}

	// Scan the root.
	top, err := m.push(path, "", false)
	if err != nil {
		return err
	}
	stack := []*frame{top}

	// Perform a post-order traversal.
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		entry, ok := current.next()
		if !ok {
			stack = stack[:len(stack)-1]
			if err := apply(current.path); err != nil {
				return err
			}
			continue
		}
		childPath := filepath.Join(current.path, entry.Name)
		if entry.IsSymbolicLink() {
			return &OperationError{Op: op, Path: childPath, Err: ErrSymbolicLink}
		} else if entry.IsDirectory() {
			child, err := m.push(childPath, "", false)
			if err != nil {
				return err
			}
			stack = append(stack, child)
		} else if err := apply(childPath); err != nil {
			return err
		}
	}

	// Success.
	return nil
}

// Chmod sets the mode of path and, if path is a directory, every entry
// beneath it. Permission bits along with the setuid, setgid, and sticky bits
// are applied. See applyRecursively for ordering and failure behavior.
func (m *Manager) Chmod(path string, mode filesystem.Mode) error {
	// Validate arguments.
	if err := validatePath("path", path); err != nil {
		return err
	} else if err := validateMode(mode); err != nil {
		return err
	}

	// Perform the operation.
	logger := m.logger.Sublogger("chmod")
	logger.Debugf("Setting mode of %s to %s", path, mode)
	return m.applyRecursively("chmod", path, logger, func(path string) error {
		return filesystem.SetMode(path, mode)
	})
}

// Chown sets the owning user of path and, if path is a directory, every entry
// beneath it. The owner may be a numeric ID (optionally prefixed with "id:")
// or a user name.
func (m *Manager) Chown(path, owner string) error {
	// Validate arguments.
	if err := validatePath("path", path); err != nil {
		return err
	} else if owner == "" {
		return &ArgumentError{Argument: "owner", Value: owner, Err: errEmptyOwnership}
	}
	ownership, err := filesystem.NewOwnershipSpecification(owner, "")
	if err != nil {
		return &ArgumentError{Argument: "owner", Value: owner, Err: err}
	}

	// Perform the operation.
	logger := m.logger.Sublogger("chown")
	logger.Debugf("Setting owner of %s to %s (%d)", path, owner, ownership.OwnerID())
	return m.applyRecursively("chown", path, logger, func(path string) error {
		return filesystem.SetOwnership(path, ownership)
	})
}

// Chgrp sets the owning group of path and, if path is a directory, every entry
// beneath it. The group may be a numeric ID (optionally prefixed with "id:")
// or a group name.
func (m *Manager) Chgrp(path, group string) error {
	// Validate arguments.
	if err := validatePath("path", path); err != nil {
		return err
	} else if group == "" {
		return &ArgumentError{Argument: "group", Value: group, Err: errEmptyOwnership}
	}
	ownership, err := filesystem.NewOwnershipSpecification("", group)
	if err != nil {
		return &ArgumentError{Argument: "group", Value: group, Err: err}
	}

	// Perform the operation.
	logger := m.logger.Sublogger("chgrp")
	logger.Debugf("Setting group of %s to %s (%d)", path, group, ownership.GroupID())
	return m.applyRecursively("chgrp", path, logger, func(path string) error {
		return filesystem.SetOwnership(path, ownership)
	})
}
