package findup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathRendererRender(testInstance *testing.T) {
	testCases := []struct {
		name          string
		topDirectory  string
		absolutePaths bool
		matchedPath   string
		expected      string
	}{
		{name: "equal_to_top", topDirectory: "/home/user", matchedPath: "/home/user", expected: "~"},
		{name: "nested_under_top", topDirectory: "/home/user", matchedPath: "/home/user/sub/file", expected: "~/sub/file"},
		{name: "direct_child_of_top", topDirectory: "/home/user", matchedPath: "/home/user/config.toml", expected: "~/config.toml"},
		{name: "outside_top", topDirectory: "/home/user", matchedPath: "/etc/hosts", expected: "/etc/hosts"},
		{name: "sibling_with_shared_prefix", topDirectory: "/home/user", matchedPath: "/home/username/file", expected: "/home/username/file"},
		{name: "root_top", topDirectory: "/", matchedPath: "/etc/hosts", expected: "~/etc/hosts"},
		{name: "unclean_top", topDirectory: "/home/user/./", matchedPath: "/home/user/config.toml", expected: "~/config.toml"},
		{name: "unclean_top_itself", topDirectory: "/home//user/", matchedPath: "/home/user", expected: "~"},
		{name: "absolute_requested", topDirectory: "/home/user", absolutePaths: true, matchedPath: "/home/user/sub/file", expected: "/home/user/sub/file"},
		{name: "absolute_requested_for_top", topDirectory: "/home/user", absolutePaths: true, matchedPath: "/home/user", expected: "/home/user"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			renderer := NewPathRenderer(testCase.topDirectory, testCase.absolutePaths)
			require.Equal(testInstance, testCase.expected, renderer.Render(testCase.matchedPath))
		})
	}
}
