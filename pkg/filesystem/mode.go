package filesystem

import (
	"strconv"

	"github.com/pkg/errors"
)

// Mode is an opaque type representing a file mode. It is guaranteed to be
// convertable to a uint32 value. On POSIX sytems, it is the raw underlying file
// mode from the Stat_t structure (as opposed to the os package's FileMode
// implementation).
type Mode uint32

const (
	// ModePermissionsMask is a bit mask that isolates portable permission bits.
	ModePermissionsMask = Mode(0777)
	// ModePermissionsSpecialMask is a bit mask that isolates permission bits
	// along with the setuid, setgid, and sticky bits.
	ModePermissionsSpecialMask = Mode(07777)
)

// ParseMode parses a user-specified octal string and verifies that it is
// limited to the bits specified in mask. It allows, but does not require, the
// string to begin with a 0 (or several 0s). The provided string must not be
// empty.
func ParseMode(value string, mask Mode) (Mode, error) {
	if m, err := strconv.ParseUint(value, 8, 32); err != nil {
		return 0, errors.Wrap(err, "unable to parse numeric value")
	} else if mode := Mode(m); mode&mask != mode {
		return 0, errors.New("mode contains disallowed bits")
	} else {
		return mode, nil
	}
}

// UnmarshalText implements the text unmarshalling interface used when loading
// from YAML files. Special bits are permitted.
func (m *Mode) UnmarshalText(textBytes []byte) error {
	// Perform parsing.
	result, err := ParseMode(string(textBytes), ModePermissionsSpecialMask)
	if err != nil {
		return err
	}

	// Success.
	*m = result
	return nil
}

// String formats the mode in octal with a leading zero.
func (m Mode) String() string {
	return "0" + strconv.FormatUint(uint64(m), 8)
}
