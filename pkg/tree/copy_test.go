package tree

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/mutagen-io/treeops/pkg/filesystem"
)

// TestCopyNewTarget tests copying a tree to a non-existent target.
func TestCopyNewTarget(t *testing.T) {
	source := createScenarioTree(t)
	target := filepath.Join(t.TempDir(), "copy")
	result, err := newTestManager().Copy(source, target)
	if err != nil {
		t.Fatal("unable to copy tree:", err)
	}
	checkPaths(t, listTree(t, target), listTree(t, source))
	if result.DirectoriesCreated != 4 {
		t.Error("unexpected number of created directories:", result.DirectoriesCreated)
	}
	if result.FilesCopied != 3 {
		t.Error("unexpected number of copied files:", result.FilesCopied)
	}
	if expected := uint64(len("foo1") + len("foo2") + len("bar/bar1")); result.BytesCopied != expected {
		t.Error("unexpected number of copied bytes:", result.BytesCopied, "!=", expected)
	}
	if result.Failures != 0 {
		t.Error("unexpected failures:", result.Failures)
	}
}

// TestCopyMerge tests that copying into an existing tree merges the source
// into it.
func TestCopyMerge(t *testing.T) {
	source := createScenarioTree(t)
	target := filepath.Join(t.TempDir(), "bar")
	createTree(t, target, "bar/", "foo1")
	if err := os.WriteFile(filepath.Join(target, "foo1"), []byte("stale contents"), 0644); err != nil {
		t.Fatal("unable to write target file:", err)
	}

	if _, err := newTestManager().Copy(source, target); err != nil {
		t.Fatal("unable to copy tree:", err)
	}
	checkPaths(t, listTree(t, target), []string{
		"bar/", "bar/bar/", "bar/bar1", "baz/", "foo1", "foo2",
	})
	if data, err := os.ReadFile(filepath.Join(target, "foo1")); err != nil {
		t.Fatal("unable to read target file:", err)
	} else if string(data) != "foo1" {
		t.Error("existing target file not overwritten:", string(data))
	}
}

// TestCopyIdempotent tests that copying, removing the target, and copying
// again produces the same tree.
func TestCopyIdempotent(t *testing.T) {
	source := createScenarioTree(t)
	target := filepath.Join(t.TempDir(), "copy")
	manager := newTestManager()
	if _, err := manager.Copy(source, target); err != nil {
		t.Fatal("unable to copy tree:", err)
	}
	first := listTree(t, target)
	if err := manager.Remove(target); err != nil {
		t.Fatal("unable to remove target:", err)
	}
	if _, err := manager.Copy(source, target); err != nil {
		t.Fatal("unable to copy tree again:", err)
	}
	checkPaths(t, listTree(t, target), first)
}

// TestCopyFile tests copying a single file, including into an existing file.
func TestCopyFile(t *testing.T) {
	source := createScenarioTree(t)
	target := filepath.Join(t.TempDir(), "file")
	manager := newTestManager()
	for i := 0; i < 2; i++ {
		if result, err := manager.Copy(filepath.Join(source, "foo2"), target); err != nil {
			t.Fatal("unable to copy file:", err)
		} else if result.FilesCopied != 1 {
			t.Error("unexpected number of copied files:", result.FilesCopied)
		}
	}
	if data, err := os.ReadFile(target); err != nil {
		t.Fatal("unable to read target:", err)
	} else if string(data) != "foo2" {
		t.Error("target contents do not match source:", string(data))
	}
}

// TestCopyMissingSource tests that copying a missing source is a no-op.
func TestCopyMissingSource(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "target")
	result, err := newTestManager().Copy(filepath.Join(parent, "missing"), target)
	if err != nil {
		t.Fatal("copy of missing source failed:", err)
	} else if result == nil || *result != (CopyResult{}) {
		t.Error("unexpected result for missing source:", result)
	}
	if _, err := os.Lstat(target); !os.IsNotExist(err) {
		t.Error("target created for missing source")
	}
}

// TestCopyDirectoryMode tests that created directories use the requested
// mode, including missing parents of the target.
func TestCopyDirectoryMode(t *testing.T) {
	// Use a fixed umask so that the resulting permissions are predictable.
	defer syscall.Umask(syscall.Umask(0))

	source := createScenarioTree(t)
	parent := filepath.Join(t.TempDir(), "parent")
	target := filepath.Join(parent, "copy")
	if _, err := newTestManager().CopyWithMode(source, target, 0750); err != nil {
		t.Fatal("unable to copy tree:", err)
	}
	checkDirectoryMode(t, 0750, parent, target)
	checkDirectoryMode(t, DefaultDirectoryMode, filepath.Join(target, "bar"), filepath.Join(target, "bar", "bar"), filepath.Join(target, "baz"))
}

// checkDirectoryMode verifies the permission bits of every directory path.
func checkDirectoryMode(t *testing.T, mode filesystem.Mode, paths ...string) {
	t.Helper()
	for _, path := range paths {
		if metadata, err := filesystem.ReadMetadata(path); err != nil {
			t.Fatal("unable to read metadata:", err)
		} else if !metadata.IsDirectory() {
			t.Errorf("%s is not a directory", path)
		} else if actual := metadata.Mode & filesystem.ModePermissionsMask; actual != mode {
			t.Errorf("directory %s has unexpected mode: %o != %o", path, actual, mode)
		}
	}
}

// TestCopyFIFO tests that a FIFO in the source tree is recorded as a single
// failure without blocking the remainder of the copy.
func TestCopyFIFO(t *testing.T) {
	source := createScenarioTree(t)
	if err := syscall.Mkfifo(filepath.Join(source, "bar", "pipe"), 0600); err != nil {
		t.Fatal("unable to create FIFO:", err)
	}
	target := filepath.Join(t.TempDir(), "copy")

	type outcome struct {
		result *CopyResult
		err    error
	}
	outcomes := make(chan outcome, 1)
	go func() {
		result, err := newTestManager().Copy(source, target)
		outcomes <- outcome{result, err}
	}()

	var o outcome
	select {
	case o = <-outcomes:
	case <-time.After(10 * time.Second):
		t.Fatal("copy blocked on FIFO entry")
	}
	if o.result == nil {
		t.Fatal("copy returned nil result:", o.err)
	} else if o.result.Failures != 1 {
		t.Error("unexpected failure count:", o.result.Failures)
	}
	failures := multierr.Errors(o.err)
	if len(failures) != 1 {
		t.Fatal("unexpected number of failures:", len(failures))
	}
	var operationError *OperationError
	if !errors.As(failures[0], &operationError) {
		t.Fatal("failure is not an operation error:", failures[0])
	} else if operationError.Path != filepath.Join(source, "bar", "pipe") {
		t.Error("failure reported for unexpected path:", operationError.Path)
	}
	for _, path := range []string{"foo1", "foo2", filepath.Join("bar", "bar1")} {
		if _, err := os.Stat(filepath.Join(target, path)); err != nil {
			t.Errorf("%s not copied: %v", path, err)
		}
	}
	if _, err := os.Lstat(filepath.Join(target, "bar", "pipe")); !os.IsNotExist(err) {
		t.Error("FIFO target created")
	}
}

// TestCopySymbolicLinks tests symbolic link handling: links to files are
// copied as files, dangling links are skipped, and links to directories fail
// without stopping the copy.
func TestCopySymbolicLinks(t *testing.T) {
	source := createScenarioTree(t)
	if err := os.Symlink("foo1", filepath.Join(source, "file-link")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	} else if err := os.Symlink("missing", filepath.Join(source, "dangling")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	} else if err := os.Symlink("bar", filepath.Join(source, "directory-link")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	target := filepath.Join(t.TempDir(), "copy")
	result, err := newTestManager().Copy(source, target)
	if err == nil {
		t.Fatal("copy of symbolic link to directory succeeded")
	}
	failures := multierr.Errors(err)
	if len(failures) != 1 {
		t.Fatal("unexpected number of failures:", len(failures))
	}
	var operationError *OperationError
	if !errors.As(failures[0], &operationError) {
		t.Fatal("failure is not an operation error:", failures[0])
	} else if operationError.Path != filepath.Join(source, "directory-link") {
		t.Error("failure reported for unexpected path:", operationError.Path)
	}
	if result.Failures != 1 {
		t.Error("unexpected failure count:", result.Failures)
	}

	// Every other entry should have been copied.
	checkPaths(t, listTree(t, target), []string{
		"bar/", "bar/bar/", "bar/bar1", "baz/", "file-link", "foo1", "foo2",
	})
	if metadata, err := filesystem.ReadMetadata(filepath.Join(target, "file-link")); err != nil {
		t.Fatal("unable to read metadata:", err)
	} else if metadata.Type() != filesystem.ModeTypeFile {
		t.Error("symbolic link to file not copied as regular file")
	}
}

// TestCopyContinuesAfterFailure tests that a failure doesn't stop the copy.
func TestCopyContinuesAfterFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
	source := createScenarioTree(t)
	unreadable := filepath.Join(source, "bar", "bar1")
	if err := os.Chmod(unreadable, 0); err != nil {
		t.Fatal("unable to make file unreadable:", err)
	}

	target := filepath.Join(t.TempDir(), "copy")
	result, err := newTestManager().Copy(source, target)
	if err == nil {
		t.Fatal("copy of unreadable file succeeded")
	} else if len(multierr.Errors(err)) != 1 {
		t.Error("unexpected failure count:", len(multierr.Errors(err)))
	}
	if result.FilesCopied != 2 {
		t.Error("unexpected number of copied files:", result.FilesCopied)
	}
	checkPaths(t, listTree(t, target), []string{"bar/", "bar/bar/", "baz/", "foo1", "foo2"})
}

// TestCopyInvalidArguments tests argument validation.
func TestCopyInvalidArguments(t *testing.T) {
	source := createScenarioTree(t)
	manager := newTestManager()
	testCases := []struct {
		description string
		source      string
		target      string
		mode        filesystem.Mode
	}{
		{"empty source", "", filepath.Join(source, "copy"), DefaultDirectoryMode},
		{"empty target", source, "", DefaultDirectoryMode},
		{"NUL in source", source + "\x00", filepath.Join(t.TempDir(), "copy"), DefaultDirectoryMode},
		{"invalid mode", source, filepath.Join(t.TempDir(), "copy"), 010000},
		{"target is source", source, source, DefaultDirectoryMode},
		{"target within source", source, filepath.Join(source, "bar", "copy"), DefaultDirectoryMode},
	}
	for _, testCase := range testCases {
		if result, err := manager.CopyWithMode(testCase.source, testCase.target, testCase.mode); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: unexpected error: %v", testCase.description, err)
		} else if result != nil {
			t.Errorf("%s: non-nil result for invalid arguments", testCase.description)
		}
	}
	if _, err := os.Lstat(filepath.Join(source, "bar", "copy")); !os.IsNotExist(err) {
		t.Error("target created despite invalid arguments")
	}
}
