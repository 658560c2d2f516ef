package filesystem

import (
	"strings"
)

// OwnershipIdentifierKind specifies the type of an identifier provided for
// ownership specification.
type OwnershipIdentifierKind uint8

const (
	// OwnershipIdentifierKindInvalid specifies an invalid identifier kind.
	OwnershipIdentifierKindInvalid OwnershipIdentifierKind = iota
	// OwnershipIdentifierKindPOSIXID specifies a POSIX user or group ID.
	OwnershipIdentifierKindPOSIXID
	// OwnershipIdentifierKindName specifies a name-based identifier.
	OwnershipIdentifierKindName
)

// isValidPOSIXID determines whether or not a string represents a valid POSIX
// user or group ID.
func isValidPOSIXID(value string) bool {
	// Ensure that the value is non-empty.
	if len(value) == 0 {
		return false
	}

	// As a special case, allow 0 for root specification. We disallow numeric
	// values that start with a 0 below, so we have to allow this specification
	// explicitly.
	if value == "0" {
		return true
	}

	// Ensure that the string starts with a non-0 digit (just so we know that
	// we're not going to parse in octal mode) and that all digits are between
	// 0 and 9.
	for i, r := range value {
		if i == 0 {
			if !('1' <= r && r <= '9') {
				return false
			}
		} else if !('0' <= r && r <= '9') {
			return false
		}
	}

	// Success.
	return true
}

// ParseOwnershipIdentifier parses an identifier provided for ownership
// specification. Numeric identifiers may be given either bare ("1000") or with
// an "id:" prefix ("id:1000"). Anything else is treated as a name, which is
// only validated during lookup.
func ParseOwnershipIdentifier(specification string) (OwnershipIdentifierKind, string) {
	// Ensure that the specification is non-empty.
	if len(specification) == 0 {
		return OwnershipIdentifierKindInvalid, ""
	}

	// Check if this is an explicit POSIX ID.
	if strings.HasPrefix(specification, "id:") {
		if value := specification[3:]; !isValidPOSIXID(value) {
			return OwnershipIdentifierKindInvalid, ""
		} else {
			return OwnershipIdentifierKindPOSIXID, value
		}
	}

	// Check if this is a bare POSIX ID.
	if isValidPOSIXID(specification) {
		return OwnershipIdentifierKindPOSIXID, specification
	}

	// Otherwise assume this is a name-based specification. Name validity on
	// POSIX is governed by NAME_REGEX, which is system-dependent, so we leave
	// validation to the lookup.
	return OwnershipIdentifierKindName, specification
}
