package tree

import (
	"path/filepath"
	"sort"
)

// Files returns the paths of every non-directory entry beneath root, sorted in
// ascending byte order. Symbolic links are reported regardless of their target
// type but are never descended into. Directories are traversed but not
// reported. The root itself may be a symbolic link to a directory.
func (m *Manager) Files(root string) ([]string, error) {
	// Validate arguments.
	if err := validatePath("root", root); err != nil {
		return nil, err
	}

	// Create a sublogger.
	logger := m.logger.Sublogger("files")
	logger.Debugf("Listing files beneath %s", root)

	// Scan the root.
	top, err := m.push(root, "", true)
	if err != nil {
		return nil, err
	}
	stack := []*frame{top}

	// Perform the traversal.
	results := make([]string, 0)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		entry, ok := current.next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		path := filepath.Join(current.path, entry.Name)
		if entry.IsDirectory() {
			child, err := m.push(path, "", false)
			if err != nil {
				return nil, err
			}
			stack = append(stack, child)
		} else {
			logger.Tracef("Found %s", path)
			results = append(results, path)
		}
	}

	// Sort the results.
	sort.Strings(results)

	// Success.
	return results, nil
}

// Directories returns the paths of every directory beneath root (excluding
// root itself) in depth-first post-order: each directory appears after all of
// its descendants. Siblings are visited in name order. Symbolic links are
// neither reported nor descended into. The root itself may be a symbolic link
// to a directory.
func (m *Manager) Directories(root string) ([]string, error) {
	// Validate arguments.
	if err := validatePath("root", root); err != nil {
		return nil, err
	}

	// Create a sublogger.
	logger := m.logger.Sublogger("dirs")
	logger.Debugf("Listing directories beneath %s", root)

	// Scan the root.
	top, err := m.push(root, "", true)
	if err != nil {
		return nil, err
	}
	stack := []*frame{top}

	// Perform the traversal.
	results := make([]string, 0)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		entry, ok := current.next()
		if !ok {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				logger.Tracef("Found %s", current.path)
				results = append(results, current.path)
			}
			continue
		}
		if entry.IsDirectory() {
			child, err := m.push(filepath.Join(current.path, entry.Name), "", false)
			if err != nil {
				return nil, err
			}
			stack = append(stack, child)
		}
	}

	// Success.
	return results, nil
}
