package findup

import (
	"path/filepath"
	"strings"
)

const tildeSymbolConstant = "~"

// PathRenderer formats matched paths for output.
type PathRenderer struct {
	topDirectory  string
	absolutePaths bool
}

// NewPathRenderer builds a renderer abbreviating paths under topDirectory unless absolutePaths is set.
func NewPathRenderer(topDirectory string, absolutePaths bool) PathRenderer {
	return PathRenderer{topDirectory: filepath.Clean(topDirectory), absolutePaths: absolutePaths}
}

// Render returns "~" for the top directory itself, "~/rest" for paths nested under it,
// and the path unchanged otherwise.
func (renderer PathRenderer) Render(matchedPath string) string {
	if renderer.absolutePaths {
		return matchedPath
	}

	cleanPath := filepath.Clean(matchedPath)
	if cleanPath == renderer.topDirectory {
		return tildeSymbolConstant
	}

	topPrefix := renderer.topDirectory
	if !strings.HasSuffix(topPrefix, string(filepath.Separator)) {
		topPrefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(cleanPath, topPrefix) {
		return matchedPath
	}

	return tildeSymbolConstant + string(filepath.Separator) + strings.TrimPrefix(cleanPath, topPrefix)
}
