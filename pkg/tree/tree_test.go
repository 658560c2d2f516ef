package tree

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/mutagen-io/treeops/pkg/logging"
)

// newTestManager creates a manager suitable for tests.
func newTestManager() *Manager {
	return NewManager(logging.NewLogger(logging.LevelError, &bytes.Buffer{}))
}

// createTree creates a tree of entries beneath root. Entries ending in a
// separator are created as directories and all others as files whose content
// is their own relative path.
func createTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatal("unable to create directory:", err)
			}
		} else {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal("unable to create parent directory:", err)
			}
			if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
				t.Fatal("unable to create file:", err)
			}
		}
	}
}

// createScenarioTree creates the standard test tree beneath a new directory
// named foo and returns its path.
func createScenarioTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "foo")
	createTree(t, root, "foo1", "foo2", "bar/bar1", "bar/bar/", "baz/")
	return root
}

// listTree returns the slash-separated relative paths of every entry beneath
// root, with directories suffixed by a slash, sorted.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var results []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		} else if path == root {
			return nil
		}
		relative, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relative = filepath.ToSlash(relative)
		if info.IsDir() {
			relative += "/"
		}
		results = append(results, relative)
		return nil
	})
	if err != nil {
		t.Fatal("unable to list tree:", err)
	}
	sort.Strings(results)
	return results
}

// joinAll joins each of the slash-separated relative paths to root.
func joinAll(root string, relatives ...string) []string {
	results := make([]string, len(relatives))
	for i, relative := range relatives {
		results[i] = filepath.Join(root, filepath.FromSlash(relative))
	}
	return results
}

// checkPaths verifies that a list of paths matches the expected list exactly.
func checkPaths(t *testing.T, actual, expected []string) {
	t.Helper()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("paths do not match expected:\n%v\n!=\n%v", actual, expected)
	}
}
