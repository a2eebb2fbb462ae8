package findup

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pathutils "github.com/temirov/findup/internal/utils/path"
)

const (
	// DefaultParallelism bounds concurrent per-target searches when no value is configured.
	DefaultParallelism = 4

	searchContextResolvedMessageConstant   = "search context resolved"
	searchStartedMessageConstant           = "searching directory chain"
	targetSearchedMessageConstant          = "target searched"
	logicalDirectoryIgnoredMessageConstant = "ignoring logical working directory"
	logFieldStartDirectoryConstant         = "start_directory"
	logFieldTopDirectoryConstant           = "top_directory"
	logFieldTargetsConstant                = "targets"
	logFieldDirectoryChainConstant         = "directory_chain"
	logFieldTargetConstant                 = "target"
	logFieldMatchCountConstant             = "match_count"
	logFieldMatchAllConstant               = "match_all"
	logFieldReverseOrderConstant           = "reverse_order"
	logFieldLogicalDirectoryConstant       = "logical_directory"
)

// FileSystem exposes the filesystem primitives the finder depends on.
type FileSystem interface {
	// Exists reports whether any filesystem entry exists at path. A missing entry is not an error.
	Exists(path string) (bool, error)
	// Canonicalize returns the absolute, symlink-resolved form of path.
	Canonicalize(path string) (string, error)
	// Absolute returns the absolute, lexically cleaned form of path without resolving symlinks.
	Absolute(path string) (string, error)
	WorkingDirectory() (string, error)
	HomeDirectory() (string, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	FileSystem  FileSystem
	Logger      *zap.Logger
	Parallelism int
}

// ResolveRequest carries raw, user-supplied search inputs.
type ResolveRequest struct {
	Targets []string
	Options Options
	// StartDirectory overrides the working directory when non-empty.
	StartDirectory string
	// TopDirectory overrides the home directory when non-empty. A leading tilde is expanded.
	TopDirectory string
	// Logical keeps symlinked path components instead of resolving them.
	Logical bool
	// LogicalWorkingDirectory is the shell's idea of the working directory (PWD).
	LogicalWorkingDirectory string
}

// Service resolves search contexts and scans directory chains for targets.
type Service struct {
	fileSystem   FileSystem
	logger       *zap.Logger
	parallelism  int
	homeExpander *pathutils.HomeExpander
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	parallelism := dependencies.Parallelism
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}

	return &Service{
		fileSystem:   dependencies.FileSystem,
		logger:       logger,
		parallelism:  parallelism,
		homeExpander: pathutils.NewHomeExpanderWithProvider(dependencies.FileSystem.HomeDirectory),
	}, nil
}

// Resolve turns raw inputs into a SearchContext. Missing targets fail before any directory is resolved.
func (service *Service) Resolve(request ResolveRequest) (SearchContext, error) {
	if len(request.Targets) == 0 {
		return SearchContext{}, NewUsageError(missingTargetsMessageConstant)
	}

	startDirectory, startError := service.resolveStartDirectory(request)
	if startError != nil {
		return SearchContext{}, startError
	}

	topDirectory, topError := service.resolveTopDirectory(request)
	if topError != nil {
		return SearchContext{}, topError
	}

	searchContext, contextError := NewSearchContext(startDirectory, topDirectory, request.Targets, request.Options)
	if contextError != nil {
		return SearchContext{}, contextError
	}

	service.logger.Debug(
		searchContextResolvedMessageConstant,
		zap.String(logFieldStartDirectoryConstant, searchContext.StartDirectory()),
		zap.String(logFieldTopDirectoryConstant, searchContext.TopDirectory()),
		zap.Strings(logFieldTargetsConstant, searchContext.Targets()),
	)

	return searchContext, nil
}

// Search scans the directory chain of searchContext for every target. Targets are searched
// concurrently; results keep the requested target order. Any filesystem failure aborts the
// whole search.
func (service *Service) Search(executionContext context.Context, searchContext SearchContext) (SearchReport, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	options := searchContext.Options()
	chain := BuildDirectoryChain(searchContext.StartDirectory(), searchContext.TopDirectory())
	searchOrder := chain.SearchOrder(options.ReverseOrder)

	service.logger.Debug(
		searchStartedMessageConstant,
		zap.Strings(logFieldDirectoryChainConstant, chain),
		zap.Bool(logFieldMatchAllConstant, options.MatchAll),
		zap.Bool(logFieldReverseOrderConstant, options.ReverseOrder),
	)

	targets := searchContext.Targets()
	results := make([]MatchResult, len(targets))

	group, groupContext := errgroup.WithContext(executionContext)
	group.SetLimit(service.parallelism)
	for targetIndex, target := range targets {
		group.Go(func() error {
			matches, searchError := service.searchTarget(groupContext, searchOrder, target, options.MatchAll)
			if searchError != nil {
				return searchError
			}
			results[targetIndex] = MatchResult{Target: target, Matches: matches}
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return SearchReport{}, waitError
	}

	for _, result := range results {
		service.logger.Debug(
			targetSearchedMessageConstant,
			zap.String(logFieldTargetConstant, result.Target),
			zap.Int(logFieldMatchCountConstant, len(result.Matches)),
		)
	}

	return SearchReport{Results: results}, nil
}

func (service *Service) searchTarget(executionContext context.Context, searchOrder []string, target string, matchAll bool) ([]string, error) {
	var matches []string
	for _, directory := range searchOrder {
		if contextError := executionContext.Err(); contextError != nil {
			return nil, contextError
		}

		candidatePath := filepath.Join(directory, target)
		exists, existsError := service.fileSystem.Exists(candidatePath)
		if existsError != nil {
			return nil, ResolutionError{Role: existenceCheckRoleConstant, Path: candidatePath, Cause: existsError}
		}
		if !exists {
			continue
		}

		matches = append(matches, candidatePath)
		if !matchAll {
			break
		}
	}
	return matches, nil
}

func (service *Service) resolveStartDirectory(request ResolveRequest) (string, error) {
	candidate := service.homeExpander.Expand(request.StartDirectory)
	if len(candidate) == 0 {
		workingDirectory, workingDirectoryError := service.fileSystem.WorkingDirectory()
		if workingDirectoryError != nil {
			return "", ResolutionError{Role: workingDirectoryRoleConstant, Cause: workingDirectoryError}
		}
		candidate = workingDirectory
		if request.Logical {
			candidate = service.logicalWorkingDirectory(request.LogicalWorkingDirectory, workingDirectory)
		}
	}

	return service.resolveDirectory(startDirectoryRoleConstant, candidate, request.Logical)
}

func (service *Service) resolveTopDirectory(request ResolveRequest) (string, error) {
	candidate := service.homeExpander.Expand(request.TopDirectory)
	if len(candidate) == 0 {
		homeDirectory, homeDirectoryError := service.fileSystem.HomeDirectory()
		if homeDirectoryError != nil {
			return "", ResolutionError{Role: homeDirectoryRoleConstant, Cause: homeDirectoryError}
		}
		candidate = homeDirectory
	}

	return service.resolveDirectory(topDirectoryRoleConstant, candidate, request.Logical)
}

func (service *Service) resolveDirectory(role string, candidate string, logical bool) (string, error) {
	resolve := service.fileSystem.Canonicalize
	if logical {
		resolve = service.fileSystem.Absolute
	}

	resolvedDirectory, resolveError := resolve(candidate)
	if resolveError != nil {
		return "", ResolutionError{Role: role, Path: candidate, Cause: resolveError}
	}
	return resolvedDirectory, nil
}

// logicalWorkingDirectory returns the shell's working directory when it is absolute and names
// the same directory as the physical one; otherwise it falls back to the physical directory.
func (service *Service) logicalWorkingDirectory(logicalDirectory string, physicalDirectory string) string {
	if len(logicalDirectory) == 0 || !filepath.IsAbs(logicalDirectory) {
		return physicalDirectory
	}

	canonicalLogical, logicalError := service.fileSystem.Canonicalize(logicalDirectory)
	canonicalPhysical, physicalError := service.fileSystem.Canonicalize(physicalDirectory)
	if logicalError != nil || physicalError != nil || canonicalLogical != canonicalPhysical {
		service.logger.Debug(logicalDirectoryIgnoredMessageConstant, zap.String(logFieldLogicalDirectoryConstant, logicalDirectory))
		return physicalDirectory
	}

	return logicalDirectory
}
