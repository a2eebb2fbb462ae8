package findup

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options toggle how matches are collected and printed.
type Options struct {
	MatchAll      bool
	ReverseOrder  bool
	AbsolutePaths bool
}

// SearchContext captures one invocation of the finder. It is immutable once constructed.
type SearchContext struct {
	startDirectory string
	topDirectory   string
	targets        []string
	options        Options
}

// NewSearchContext validates the inputs and builds a SearchContext.
// Both directories must already be absolute; targets must be non-empty local paths.
func NewSearchContext(startDirectory string, topDirectory string, targets []string, options Options) (SearchContext, error) {
	if len(targets) == 0 {
		return SearchContext{}, NewUsageError(missingTargetsMessageConstant)
	}

	duplicatedTargets := make([]string, 0, len(targets))
	for _, target := range targets {
		if len(target) == 0 {
			return SearchContext{}, NewUsageError(emptyTargetMessageConstant)
		}
		if !filepath.IsLocal(target) {
			return SearchContext{}, NewUsageError(fmt.Sprintf(nonLocalTargetTemplateConstant, target))
		}
		duplicatedTargets = append(duplicatedTargets, target)
	}

	if !filepath.IsAbs(startDirectory) {
		return SearchContext{}, ResolutionError{
			Role:  startDirectoryRoleConstant,
			Path:  startDirectory,
			Cause: fmt.Errorf(relativeDirectoryTemplateConstant, startDirectoryRoleConstant),
		}
	}
	if !filepath.IsAbs(topDirectory) {
		return SearchContext{}, ResolutionError{
			Role:  topDirectoryRoleConstant,
			Path:  topDirectory,
			Cause: fmt.Errorf(relativeDirectoryTemplateConstant, topDirectoryRoleConstant),
		}
	}

	return SearchContext{
		startDirectory: filepath.Clean(startDirectory),
		topDirectory:   filepath.Clean(topDirectory),
		targets:        duplicatedTargets,
		options:        options,
	}, nil
}

// StartDirectory returns the directory the search begins in.
func (searchContext SearchContext) StartDirectory() string {
	return searchContext.startDirectory
}

// TopDirectory returns the inclusive upper bound of the search.
func (searchContext SearchContext) TopDirectory() string {
	return searchContext.topDirectory
}

// Targets returns a copy of the requested target names in order.
func (searchContext SearchContext) Targets() []string {
	return append([]string{}, searchContext.targets...)
}

// Options returns the search options.
func (searchContext SearchContext) Options() Options {
	return searchContext.options
}

// DirectoryChain lists candidate directories ordered from the start directory upward.
type DirectoryChain []string

// SearchOrder returns the chain in the order directories are scanned.
func (chain DirectoryChain) SearchOrder(reverse bool) []string {
	ordered := make([]string, len(chain))
	copy(ordered, chain)
	if !reverse {
		return ordered
	}
	for leftIndex, rightIndex := 0, len(ordered)-1; leftIndex < rightIndex; leftIndex, rightIndex = leftIndex+1, rightIndex-1 {
		ordered[leftIndex], ordered[rightIndex] = ordered[rightIndex], ordered[leftIndex]
	}
	return ordered
}

// String joins the chain for diagnostics.
func (chain DirectoryChain) String() string {
	return strings.Join(chain, string(filepath.ListSeparator))
}

// MatchResult lists the absolute paths where a target exists, in search order.
type MatchResult struct {
	Target  string
	Matches []string
}

// Found reports whether the target exists anywhere in the chain.
func (result MatchResult) Found() bool {
	return len(result.Matches) > 0
}

// SearchReport aggregates per-target results in the order targets were requested.
type SearchReport struct {
	Results []MatchResult
}

// Found reports whether at least one target matched at least one location.
func (report SearchReport) Found() bool {
	for _, result := range report.Results {
		if result.Found() {
			return true
		}
	}
	return false
}

// MatchCount returns the total number of matched paths across all targets.
func (report SearchReport) MatchCount() int {
	total := 0
	for _, result := range report.Results {
		total += len(result.Matches)
	}
	return total
}
