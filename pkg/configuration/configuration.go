// Package configuration provides loading of the treeops defaults file.
package configuration

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/treeops/pkg/encoding"
	"github.com/mutagen-io/treeops/pkg/filesystem"
	"github.com/mutagen-io/treeops/pkg/logging"
)

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Copy is the copy configuration.
	Copy struct {
		// DirectoryMode is the mode used for directories created by copy
		// operations. A zero value indicates the default.
		DirectoryMode filesystem.Mode `yaml:"directoryMode"`
	} `yaml:"copy"`
	// Logging is the logging configuration.
	Logging struct {
		// Level is the default log level. A nil value indicates the default.
		Level *logging.Level `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfiguration attempts to load a YAML-based configuration file from the
// specified path. If the file doesn't exist, an empty configuration is
// returned.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrapf(err, "unable to load configuration from %s", path)
	}

	// Success.
	return result, nil
}
