package filesystem

// Metadata encodes information about a filesystem entry.
type Metadata struct {
	// Name is the base name of the filesystem entry.
	Name string
	// Mode is the mode of the filesystem entry.
	Mode Mode
}

// Type returns the type bits of the entry's mode. The result can be compared
// against the ModeType* constants.
func (m *Metadata) Type() Mode {
	return m.Mode & ModeTypeMask
}

// IsDirectory indicates whether or not the entry is a directory.
func (m *Metadata) IsDirectory() bool {
	return m.Type() == ModeTypeDirectory
}

// IsSymbolicLink indicates whether or not the entry is a symbolic link.
func (m *Metadata) IsSymbolicLink() bool {
	return m.Type() == ModeTypeSymbolicLink
}
