package tree

import (
	"sort"

	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/must"
)

// frame is a single element of a traversal stack. It tracks a directory whose
// contents have been read but not yet fully processed.
type frame struct {
	// path is the path of the directory.
	path string
	// target is the corresponding target path, used only by copy operations.
	target string
	// pending are the directory's entries that haven't been processed yet, in
	// processing order.
	pending []*filesystem.Metadata
}

// next removes and returns the next pending entry. It returns false once the
// directory's contents have been exhausted, at which point any post-order
// action for the directory should be performed.
func (f *frame) next() (*filesystem.Metadata, bool) {
	if len(f.pending) == 0 {
		return nil, false
	}
	entry := f.pending[0]
	f.pending[0] = nil
	f.pending = f.pending[1:]
	return entry, true
}

// scan reads the entries of the directory at path, sorted by name. A symbolic
// link at the leaf position is resolved only if followLeaf is true. The
// directory handle is closed before scan returns, so no handles are held while
// the entries are processed.
func (m *Manager) scan(path string, followLeaf bool) ([]*filesystem.Metadata, error) {
	// Open the directory.
	directory, _, err := filesystem.OpenDirectory(path, followLeaf, m.logger)
	if err != nil {
		return nil, &OperationError{Op: "open", Path: path, Err: err}
	}
	defer must.Close(directory, m.logger)

	// Read its contents.
	contents, err := directory.ReadContents()
	if err != nil {
		return nil, &OperationError{Op: "read", Path: path, Err: err}
	}

	// Sort the contents for deterministic processing.
	sort.Slice(contents, func(i, j int) bool {
		return contents[i].Name < contents[j].Name
	})

	// Success.
	return contents, nil
}

// push scans the directory at path and returns a frame for it.
func (m *Manager) push(path, target string, followLeaf bool) (*frame, error) {
	contents, err := m.scan(path, followLeaf)
	if err != nil {
		return nil, err
	}
	return &frame{path: path, target: target, pending: contents}, nil
}
