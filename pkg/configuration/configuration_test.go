package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mutagen-io/treeops/pkg/logging"
)

// levelPointer returns a pointer to a copy of level.
func levelPointer(level logging.Level) *logging.Level {
	return &level
}

// TestConfigurationPath tests that ConfigurationPath succeeds and returns a
// non-empty path.
func TestConfigurationPath(t *testing.T) {
	if path, err := ConfigurationPath(); err != nil {
		t.Fatal("unable to compute configuration path:", err)
	} else if filepath.Base(path) != ConfigurationName {
		t.Error("configuration path has unexpected base name:", path)
	}
}

// TestLoadConfigurationMissing tests that a missing configuration file yields
// an empty configuration.
func TestLoadConfigurationMissing(t *testing.T) {
	configuration, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal("unable to load missing configuration:", err)
	}
	if configuration.Copy.DirectoryMode != 0 {
		t.Error("missing configuration has non-zero directory mode")
	}
	if configuration.Logging.Level != nil {
		t.Error("missing configuration has log level set")
	}
}

// TestLoadConfiguration tests loading of a configuration file.
func TestLoadConfiguration(t *testing.T) {
	testCases := []struct {
		description   string
		contents      string
		expectFailure bool
		expectedMode  uint32
		expectedLevel *logging.Level
	}{
		{"empty", "", false, 0, nil},
		{"full", "copy:\n  directoryMode: \"0750\"\nlogging:\n  level: debug\n", false, 0750, levelPointer(logging.LevelDebug)},
		{"disabled logging", "logging:\n  level: disabled\n", false, 0, levelPointer(logging.LevelDisabled)},
		{"special bits", "copy:\n  directoryMode: \"2775\"\n", false, 02775, nil},
		{"invalid mode", "copy:\n  directoryMode: \"0999\"\n", true, 0, nil},
		{"invalid level", "logging:\n  level: loud\n", true, 0, nil},
		{"unknown field", "remove:\n  force: true\n", true, 0, nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigurationName)
			if err := os.WriteFile(path, []byte(testCase.contents), 0600); err != nil {
				t.Fatal("unable to write configuration:", err)
			}
			configuration, err := LoadConfiguration(path)
			if testCase.expectFailure {
				if err == nil {
					t.Error("configuration loaded successfully")
				}
				return
			} else if err != nil {
				t.Fatal("unable to load configuration:", err)
			}
			if uint32(configuration.Copy.DirectoryMode) != testCase.expectedMode {
				t.Errorf("directory mode mismatch: %o != %o", configuration.Copy.DirectoryMode, testCase.expectedMode)
			}
			if testCase.expectedLevel == nil {
				if configuration.Logging.Level != nil {
					t.Error("log level unexpectedly set:", *configuration.Logging.Level)
				}
			} else if configuration.Logging.Level == nil {
				t.Error("log level not set")
			} else if *configuration.Logging.Level != *testCase.expectedLevel {
				t.Error("log level mismatch:", *configuration.Logging.Level, "!=", *testCase.expectedLevel)
			}
		})
	}
}
