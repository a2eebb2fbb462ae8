package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// OSFileSystem implements the finder's filesystem collaborator using operating system primitives.
type OSFileSystem struct{}

// NewOSFileSystem constructs an OSFileSystem.
func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

// Exists reports whether an entry exists at path, following symlinks. Missing entries, broken
// or looping symlinks, and non-directory parents yield false without an error.
func (OSFileSystem) Exists(path string) (bool, error) {
	_, statError := os.Stat(path)
	switch {
	case statError == nil:
		return true, nil
	case errors.Is(statError, fs.ErrNotExist):
		return false, nil
	case errors.Is(statError, syscall.ENOTDIR):
		return false, nil
	case errors.Is(statError, syscall.ELOOP):
		return false, nil
	default:
		return false, statError
	}
}

// Canonicalize resolves an absolute path with every symlink evaluated.
func (fileSystem OSFileSystem) Canonicalize(path string) (string, error) {
	absolutePath, absoluteError := fileSystem.Absolute(path)
	if absoluteError != nil {
		return "", absoluteError
	}
	return filepath.EvalSymlinks(absolutePath)
}

// Absolute resolves an absolute, cleaned path without evaluating symlinks.
func (OSFileSystem) Absolute(path string) (string, error) {
	return filepath.Abs(path)
}

// WorkingDirectory returns the process working directory.
func (OSFileSystem) WorkingDirectory() (string, error) {
	return os.Getwd()
}

// HomeDirectory returns the current user's home directory.
func (OSFileSystem) HomeDirectory() (string, error) {
	return os.UserHomeDir()
}
