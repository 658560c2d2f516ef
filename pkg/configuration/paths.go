package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ConfigurationName is the name of the configuration file within the user's
// home directory.
const ConfigurationName = ".treeops.yml"

// ConfigurationPath returns the path of the YAML-based configuration file. It
// does not verify that the file exists.
func ConfigurationPath() (string, error) {
	// Compute the path to the user's home directory.
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}

	// Success.
	return filepath.Join(homeDirectoryPath, ConfigurationName), nil
}
