package filesystem_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/findup/internal/filesystem"
)

func TestOSFileSystemExists(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	regularFilePath := filepath.Join(temporaryDirectory, "regular")
	require.NoError(testInstance, os.WriteFile(regularFilePath, []byte("content"), 0o600))
	directoryPath := filepath.Join(temporaryDirectory, "directory")
	require.NoError(testInstance, os.Mkdir(directoryPath, 0o755))

	fileSystem := filesystem.NewOSFileSystem()

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "regular_file", path: regularFilePath, expected: true},
		{name: "directory", path: directoryPath, expected: true},
		{name: "missing", path: filepath.Join(temporaryDirectory, "missing"), expected: false},
		{name: "file_used_as_directory", path: filepath.Join(regularFilePath, "child"), expected: false},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			exists, existsError := fileSystem.Exists(testCase.path)
			require.NoError(testInstance, existsError)
			require.Equal(testInstance, testCase.expected, exists)
		})
	}
}

func TestOSFileSystemExistsFollowsSymlinks(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	targetPath := filepath.Join(temporaryDirectory, "target")
	require.NoError(testInstance, os.WriteFile(targetPath, []byte("content"), 0o600))

	validLinkPath := filepath.Join(temporaryDirectory, "valid")
	danglingLinkPath := filepath.Join(temporaryDirectory, "dangling")
	loopingLinkPath := filepath.Join(temporaryDirectory, "looping")
	if symlinkError := os.Symlink(targetPath, validLinkPath); symlinkError != nil {
		testInstance.Skipf("symlinks unavailable: %v", symlinkError)
	}
	require.NoError(testInstance, os.Symlink(filepath.Join(temporaryDirectory, "absent"), danglingLinkPath))
	require.NoError(testInstance, os.Symlink(loopingLinkPath, loopingLinkPath))

	fileSystem := filesystem.NewOSFileSystem()

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "valid_link", path: validLinkPath, expected: true},
		{name: "dangling_link", path: danglingLinkPath, expected: false},
		{name: "looping_link", path: loopingLinkPath, expected: false},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			exists, existsError := fileSystem.Exists(testCase.path)
			require.NoError(testInstance, existsError)
			require.Equal(testInstance, testCase.expected, exists)
		})
	}
}

func TestOSFileSystemCanonicalizeResolvesSymlinks(testInstance *testing.T) {
	temporaryDirectory, evaluationError := filepath.EvalSymlinks(testInstance.TempDir())
	require.NoError(testInstance, evaluationError)

	targetDirectory := filepath.Join(temporaryDirectory, "target")
	require.NoError(testInstance, os.Mkdir(targetDirectory, 0o755))
	linkDirectory := filepath.Join(temporaryDirectory, "link")
	if symlinkError := os.Symlink(targetDirectory, linkDirectory); symlinkError != nil {
		testInstance.Skipf("symlinks unavailable: %v", symlinkError)
	}

	fileSystem := filesystem.NewOSFileSystem()

	canonicalPath, canonicalError := fileSystem.Canonicalize(filepath.Join(linkDirectory, ".", "..", "link"))
	require.NoError(testInstance, canonicalError)
	require.Equal(testInstance, targetDirectory, canonicalPath)

	absolutePath, absoluteError := fileSystem.Absolute(filepath.Join(linkDirectory, "."))
	require.NoError(testInstance, absoluteError)
	require.Equal(testInstance, linkDirectory, absolutePath)

	_, missingError := fileSystem.Canonicalize(filepath.Join(temporaryDirectory, "absent"))
	require.Error(testInstance, missingError)
}

func TestOSFileSystemDirectories(testInstance *testing.T) {
	fileSystem := filesystem.NewOSFileSystem()

	workingDirectory, workingDirectoryError := fileSystem.WorkingDirectory()
	require.NoError(testInstance, workingDirectoryError)
	require.True(testInstance, filepath.IsAbs(workingDirectory))

	homeDirectory := testInstance.TempDir()
	testInstance.Setenv("HOME", homeDirectory)
	resolvedHomeDirectory, homeDirectoryError := fileSystem.HomeDirectory()
	require.NoError(testInstance, homeDirectoryError)
	require.Equal(testInstance, homeDirectory, resolvedHomeDirectory)
}
