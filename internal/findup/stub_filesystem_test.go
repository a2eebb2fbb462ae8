package findup

import (
	"errors"
	"path/filepath"
	"sync"
)

var errStubResolution = errors.New("stub resolution failure")

type stubFileSystem struct {
	mutex            sync.Mutex
	existingPaths    map[string]struct{}
	existenceErrors  map[string]error
	canonicalPaths   map[string]string
	canonicalErrors  map[string]error
	workingDirectory string
	homeDirectory    string
	homeError        error
	checkedPaths     []string
	canonicalCalls   int
}

func newStubFileSystem(workingDirectory string, homeDirectory string, existingPaths ...string) *stubFileSystem {
	fileSystem := &stubFileSystem{
		existingPaths:    make(map[string]struct{}, len(existingPaths)),
		existenceErrors:  map[string]error{},
		canonicalPaths:   map[string]string{},
		canonicalErrors:  map[string]error{},
		workingDirectory: workingDirectory,
		homeDirectory:    homeDirectory,
	}
	for _, existingPath := range existingPaths {
		fileSystem.existingPaths[existingPath] = struct{}{}
	}
	return fileSystem
}

func (fileSystem *stubFileSystem) Exists(path string) (bool, error) {
	fileSystem.mutex.Lock()
	defer fileSystem.mutex.Unlock()

	fileSystem.checkedPaths = append(fileSystem.checkedPaths, path)
	if existenceError, failing := fileSystem.existenceErrors[path]; failing {
		return false, existenceError
	}
	_, exists := fileSystem.existingPaths[path]
	return exists, nil
}

func (fileSystem *stubFileSystem) Canonicalize(path string) (string, error) {
	fileSystem.mutex.Lock()
	fileSystem.canonicalCalls++
	fileSystem.mutex.Unlock()

	absolutePath, _ := fileSystem.Absolute(path)
	if canonicalError, failing := fileSystem.canonicalErrors[absolutePath]; failing {
		return "", canonicalError
	}
	if canonicalPath, mapped := fileSystem.canonicalPaths[absolutePath]; mapped {
		return canonicalPath, nil
	}
	return absolutePath, nil
}

func (fileSystem *stubFileSystem) Absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(fileSystem.workingDirectory, path), nil
}

func (fileSystem *stubFileSystem) WorkingDirectory() (string, error) {
	return fileSystem.workingDirectory, nil
}

func (fileSystem *stubFileSystem) HomeDirectory() (string, error) {
	if fileSystem.homeError != nil {
		return "", fileSystem.homeError
	}
	return fileSystem.homeDirectory, nil
}

func (fileSystem *stubFileSystem) checked() []string {
	fileSystem.mutex.Lock()
	defer fileSystem.mutex.Unlock()
	return append([]string{}, fileSystem.checkedPaths...)
}
