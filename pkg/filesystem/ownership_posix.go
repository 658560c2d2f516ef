//go:build !windows

package filesystem

import (
	"os"
	userpkg "os/user"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// OwnershipSpecification is an opaque type that encodes specification of file
// and/or directory ownership.
type OwnershipSpecification struct {
	// ownerID encodes the POSIX user ID associated with the ownership
	// specification. A value of -1 indicates the absence of specification. The
	// availability of -1 as a sentinel value for omission is guaranteed by the
	// POSIX definition of chown.
	ownerID int
	// groupID encodes the POSIX group ID associated with the ownership
	// specification. A value of -1 indicates the absence of specification.
	groupID int
}

// OwnerID returns the user ID encoded by the specification, or -1 if no owner
// was specified.
func (s *OwnershipSpecification) OwnerID() int {
	return s.ownerID
}

// GroupID returns the group ID encoded by the specification, or -1 if no group
// was specified.
func (s *OwnershipSpecification) GroupID() int {
	return s.groupID
}

// maximumPOSIXID is the largest usable user or group ID. The all-ones value
// (uid_t)-1 is reserved by chown to mean "unchanged".
const maximumPOSIXID = 1<<32 - 2

// parsePOSIXID converts a decimal user or group ID to a numeric value, ensuring
// that it fits within the 32-bit ID space.
func parsePOSIXID(value string) (int, error) {
	if id, err := strconv.ParseUint(value, 10, 32); err != nil {
		return -1, errors.Wrap(err, "unable to convert ID to numeric value")
	} else if id > maximumPOSIXID {
		return -1, errors.Errorf("ID %d is reserved", id)
	} else {
		return int(id), nil
	}
}

// lookupOwnerID resolves an owner specification to a user ID. Numeric IDs are
// used verbatim without requiring a matching account, as with chown(1).
func lookupOwnerID(owner string) (int, error) {
	switch kind, identifier := ParseOwnershipIdentifier(owner); kind {
	case OwnershipIdentifierKindInvalid:
		return -1, errors.New("invalid user specification")
	case OwnershipIdentifierKindPOSIXID:
		if u, err := parsePOSIXID(identifier); err != nil {
			return -1, errors.Wrap(err, "invalid user ID")
		} else {
			return u, nil
		}
	case OwnershipIdentifierKindName:
		if userObject, err := userpkg.Lookup(identifier); err != nil {
			return -1, errors.Wrap(err, "unable to lookup user by name")
		} else if u, err := parsePOSIXID(userObject.Uid); err != nil {
			return -1, errors.Wrap(err, "unable to convert user ID to numeric value")
		} else {
			return u, nil
		}
	default:
		panic("unhandled ownership identifier kind")
	}
}

// lookupGroupID resolves a group specification to a group ID. Numeric IDs are
// used verbatim without requiring a matching group, as with chgrp(1).
func lookupGroupID(group string) (int, error) {
	switch kind, identifier := ParseOwnershipIdentifier(group); kind {
	case OwnershipIdentifierKindInvalid:
		return -1, errors.New("invalid group specification")
	case OwnershipIdentifierKindPOSIXID:
		if g, err := parsePOSIXID(identifier); err != nil {
			return -1, errors.Wrap(err, "invalid group ID")
		} else {
			return g, nil
		}
	case OwnershipIdentifierKindName:
		if groupObject, err := userpkg.LookupGroup(identifier); err != nil {
			return -1, errors.Wrap(err, "unable to lookup group by name")
		} else if g, err := parsePOSIXID(groupObject.Gid); err != nil {
			return -1, errors.Wrap(err, "unable to convert group ID to numeric value")
		} else {
			return g, nil
		}
	default:
		panic("unhandled ownership identifier kind")
	}
}

// NewOwnershipSpecification parses owner and group specifications and resolves
// their system-level identifiers. Either specification may be empty, in which
// case that component is left unset.
func NewOwnershipSpecification(owner, group string) (*OwnershipSpecification, error) {
	// Attempt to parse and look up the owner, if specified.
	ownerID := -1
	if owner != "" {
		if u, err := lookupOwnerID(owner); err != nil {
			return nil, err
		} else {
			ownerID = u
		}
	}

	// Attempt to parse and look up the group, if specified.
	groupID := -1
	if group != "" {
		if g, err := lookupGroupID(group); err != nil {
			return nil, err
		} else {
			groupID = g
		}
	}

	// Success.
	return &OwnershipSpecification{
		ownerID: ownerID,
		groupID: groupID,
	}, nil
}

// SetOwnership applies an ownership specification to the entry at the
// specified path without following a symbolic link at the leaf position. It is
// a no-op if the specification is nil or has both components unset.
func SetOwnership(path string, ownership *OwnershipSpecification) error {
	if ownership == nil || (ownership.ownerID == -1 && ownership.groupID == -1) {
		return nil
	}
	if err := fchownatRetryingOnEINTR(unix.AT_FDCWD, path, ownership.ownerID, ownership.groupID, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &os.PathError{Op: "chown", Path: path, Err: err}
	}
	return nil
}
