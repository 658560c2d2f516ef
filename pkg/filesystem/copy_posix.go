//go:build !windows

package filesystem

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/treeops/pkg/logging"
	"github.com/mutagen-io/treeops/pkg/must"
)

// CopyFileContents copies the contents of the regular file at source to
// target, creating target (with mode 0666, subject to the process umask) if it
// doesn't exist and truncating it if it does. A symbolic link at source is
// followed. Existing target permissions and ownership are left untouched. It
// returns the number of bytes copied.
//
// Failures to open source are returned unwrapped so that they can be matched
// against os.ErrNotExist.
func CopyFileContents(source, target string, logger *logging.Logger) (uint64, error) {
	// Open the source file. We open in non-blocking mode so that opening a FIFO
	// without a writer doesn't block.
	descriptor, err := openatRetryingOnEINTR(unix.AT_FDCWD, source, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, &os.PathError{Op: "open", Path: source, Err: err}
	}
	sourceFile := file(descriptor)
	defer must.Close(sourceFile, logger)

	// Verify that the source is a regular file.
	var metadata unix.Stat_t
	if err := fstatRetryingOnEINTR(descriptor, &metadata); err != nil {
		return 0, errors.Wrap(err, "unable to query source metadata")
	} else if Mode(metadata.Mode)&ModeTypeMask != ModeTypeFile {
		return 0, errors.Wrap(ErrUnsupportedOpenType, "source is not a regular file")
	}

	// Restore blocking mode for reads.
	if flags, err := unix.FcntlInt(uintptr(descriptor), unix.F_GETFL, 0); err != nil {
		return 0, errors.Wrap(err, "unable to query source descriptor flags")
	} else if _, err := unix.FcntlInt(uintptr(descriptor), unix.F_SETFL, flags&^unix.O_NONBLOCK); err != nil {
		return 0, errors.Wrap(err, "unable to set source descriptor flags")
	}

	// Open the target.
	targetFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open target file")
	}

	// Copy contents.
	copied, err := io.Copy(targetFile, sourceFile)
	if err != nil {
		must.Close(targetFile, logger)
		return uint64(copied), errors.Wrap(err, "unable to copy file contents")
	}

	// Close the target, which may surface deferred write errors.
	if err := targetFile.Close(); err != nil {
		return uint64(copied), errors.Wrap(err, "unable to close target file")
	}

	// Success.
	return uint64(copied), nil
}
