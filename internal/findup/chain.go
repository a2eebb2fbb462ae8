package findup

import "path/filepath"

// BuildDirectoryChain lists startDirectory and its ancestors, stopping after topDirectory
// or at the filesystem root when topDirectory is not an ancestor. Both arguments must be
// absolute; the computation is lexical and never touches the filesystem.
func BuildDirectoryChain(startDirectory string, topDirectory string) DirectoryChain {
	currentDirectory := filepath.Clean(startDirectory)
	cleanTopDirectory := filepath.Clean(topDirectory)

	var chain DirectoryChain
	for {
		chain = append(chain, currentDirectory)
		if currentDirectory == cleanTopDirectory {
			return chain
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return chain
		}
		currentDirectory = parentDirectory
	}
}
