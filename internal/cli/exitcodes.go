package cli

import (
	"errors"
	"os"

	"github.com/yaklabco/gomdview/internal/configloader"
	"github.com/yaklabco/gomdview/pkg/fsutil"
)

// Exit codes for gomdview.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failure without a more specific code.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrInvalidUsage wraps flag and argument errors.
var ErrInvalidUsage = errors.New("invalid usage")

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIOError
	default:
		return ExitFailure
	}
}
