// Package encoding provides loading helpers for on-disk configuration data.
package encoding

import (
	"os"

	"github.com/pkg/errors"
)

// LoadAndUnmarshal reads the data at the specified path and then invokes the
// specified unmarshaling callback (usually a closure) to decode it.
// Non-existence errors are returned unwrapped so that callers can detect a
// missing file with os.IsNotExist.
func LoadAndUnmarshal(path string, unmarshal func([]byte) error) error {
	// Grab the file contents.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return errors.Wrap(err, "unable to load file")
	}

	// Perform the unmarshaling.
	if err := unmarshal(data); err != nil {
		return errors.Wrap(err, "unable to unmarshal data")
	}

	// Success.
	return nil
}
