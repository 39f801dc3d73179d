package cli

import "errors"

// Exit codes for lintwarden.
const (
	// ExitSuccess indicates successful execution with no new issues.
	ExitSuccess = 0

	// ExitNewWarnings indicates new unapproved warnings were found.
	ExitNewWarnings = 1

	// ExitBlockingFindings indicates the health check found critical findings.
	ExitBlockingFindings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors, including a declined
	// lint-config change.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// Sentinel errors used to carry an exit code out of command handlers.
// The handler has already rendered its output when these are returned.
var (
	// ErrNewWarningsFound is returned when check finds unapproved warnings.
	ErrNewWarningsFound = errors.New("new warnings found")

	// ErrBlockingFindings is returned when score finds critical findings.
	ErrBlockingFindings = errors.New("critical findings present")

	// ErrConfigDeclined is returned when the user declines to accept a
	// changed lint configuration. The cache is left untouched.
	ErrConfigDeclined = errors.New("lint configuration change declined")

	// ErrNoTTY is returned when interactive approval is requested without a
	// terminal on stdin.
	ErrNoTTY = errors.New("interactive approval requires a terminal")
)

// IsBlockingSignal reports whether err is a sentinel that only exists to
// select a nonzero exit code. These are not failures worth logging.
func IsBlockingSignal(err error) bool {
	return errors.Is(err, ErrNewWarningsFound) ||
		errors.Is(err, ErrBlockingFindings) ||
		errors.Is(err, ErrConfigDeclined)
}

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNewWarningsFound):
		return ExitNewWarnings
	case errors.Is(err, ErrBlockingFindings):
		return ExitBlockingFindings
	case errors.Is(err, ErrConfigDeclined):
		return ExitConfigError
	case errors.Is(err, ErrNoTTY):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
