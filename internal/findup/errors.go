package findup

import (
	"errors"
	"fmt"
)

const (
	noMatchesMessageConstant               = "no target matched"
	fileSystemNotConfiguredMessageConstant = "filesystem not configured"
	usageErrorTemplateConstant             = "%s"
	resolutionErrorTemplateConstant        = "unable to resolve %s %q: %v"
	resolutionErrorNoPathTemplateConstant  = "unable to resolve %s: %v"
	missingTargetsMessageConstant          = "no target file specified"
	emptyTargetMessageConstant             = "target names must be non-empty"
	nonLocalTargetTemplateConstant         = "target %q must be a relative path inside the searched directory"
	relativeDirectoryTemplateConstant      = "%s must be absolute"
	startDirectoryRoleConstant             = "start directory"
	topDirectoryRoleConstant               = "top directory"
	workingDirectoryRoleConstant           = "working directory"
	homeDirectoryRoleConstant              = "home directory"
	existenceCheckRoleConstant             = "existence of"
)

// ErrNoMatches indicates that none of the requested targets exist in the directory chain.
var ErrNoMatches = errors.New(noMatchesMessageConstant)

// ErrFileSystemNotConfigured indicates the filesystem collaborator was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)

// UsageError reports invalid or missing command-line input. No search is attempted.
type UsageError struct {
	Reason string
}

// Error describes the usage failure.
func (usageError UsageError) Error() string {
	return fmt.Sprintf(usageErrorTemplateConstant, usageError.Reason)
}

// NewUsageError wraps a reason into a UsageError.
func NewUsageError(reason string) error {
	return UsageError{Reason: reason}
}

// ResolutionError reports a directory or existence check that could not be resolved.
type ResolutionError struct {
	Role  string
	Path  string
	Cause error
}

// Error describes the resolution failure.
func (resolutionError ResolutionError) Error() string {
	if len(resolutionError.Path) == 0 {
		return fmt.Sprintf(resolutionErrorNoPathTemplateConstant, resolutionError.Role, resolutionError.Cause)
	}
	return fmt.Sprintf(resolutionErrorTemplateConstant, resolutionError.Role, resolutionError.Path, resolutionError.Cause)
}

// Unwrap exposes the underlying cause.
func (resolutionError ResolutionError) Unwrap() error {
	return resolutionError.Cause
}
