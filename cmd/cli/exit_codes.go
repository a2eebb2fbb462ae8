package cli

import (
	"errors"

	"github.com/temirov/findup/internal/findup"
)

// Process exit statuses.
const (
	ExitCodeSuccess  = 0
	ExitCodeNotFound = 1
	ExitCodeFailure  = 2
)

// ExitCode maps an execution error to the process exit status: success, no target found,
// or a usage/resolution failure.
func ExitCode(executionError error) int {
	switch {
	case executionError == nil:
		return ExitCodeSuccess
	case errors.Is(executionError, findup.ErrNoMatches):
		return ExitCodeNotFound
	default:
		return ExitCodeFailure
	}
}

// ShouldReport reports whether executionError warrants a message on stderr. Finding nothing is
// communicated through the exit status alone.
func ShouldReport(executionError error) bool {
	return executionError != nil && !errors.Is(executionError, findup.ErrNoMatches)
}
