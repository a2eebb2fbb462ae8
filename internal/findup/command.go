package findup

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/findup/internal/filesystem"
)

const (
	commandUseConstant              = "findup [options] target1 [target2 ...]"
	commandShortDescriptionConstant = "Search upward from the current directory for files or directories"
	commandLongDescriptionConstant  = "findup walks from the current directory up to the top directory (your home directory by default) and prints the nearest location of each target. Paths under the top directory are abbreviated with ~ unless --absolute is set. Targets are names relative to each searched directory, so absolute paths and .. components are rejected. Symlinks are followed and a broken symlink does not count as a match. Exits 0 when any target is found, 1 when none is found, and 2 on usage errors."
	commandExampleConstant          = "findup go.mod\nfindup --all .editorconfig .git\nfindup --reverse --absolute --topdir / Makefile"

	allFlagNameConstant               = "all"
	allFlagShorthandConstant          = "a"
	allFlagUsageConstant              = "Report every enclosing directory containing the target, not just the nearest"
	reverseFlagNameConstant           = "reverse"
	reverseFlagShorthandConstant      = "r"
	reverseFlagUsageConstant          = "Search from the top directory down toward the current directory"
	absoluteFlagNameConstant          = "absolute"
	absoluteFlagShorthandConstant     = "A"
	absoluteFlagUsageConstant         = "Print absolute paths instead of abbreviating with ~"
	topDirectoryFlagNameConstant      = "topdir"
	topDirectoryFlagShorthandConstant = "t"
	topDirectoryFlagUsageConstant     = "Directory where the upward search stops (default: home directory)"
	startFlagNameConstant             = "start"
	startFlagShorthandConstant        = "s"
	startFlagUsageConstant            = "Directory where the upward search begins (default: current directory)"
	logicalFlagNameConstant           = "logical"
	logicalFlagShorthandConstant      = "L"
	logicalFlagUsageConstant          = "Use the logical working directory from PWD and keep symlinked path components"

	logicalWorkingDirectoryEnvironmentNameConstant = "PWD"
	searchCompletedMessageConstant                 = "findup search completed"
	logFieldTargetCountConstant                    = "target_count"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// EnvironmentLookup resolves environment variables.
type EnvironmentLookup func(name string) (string, bool)

// CommandBuilder assembles the findup command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            FileSystem
	ConfigurationProvider func() CommandConfiguration
	EnvironmentLookup     EnvironmentLookup
}

type commandFlagValues struct {
	matchAll       bool
	reverseOrder   bool
	absolutePaths  bool
	logical        bool
	topDirectory   string
	startDirectory string
}

// Build constructs the findup command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	flagValues := &commandFlagValues{}

	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, flagValues)
		},
	}
	command.CompletionOptions.DisableDefaultCmd = true

	flagSet := command.Flags()
	flagSet.BoolVarP(&flagValues.matchAll, allFlagNameConstant, allFlagShorthandConstant, false, allFlagUsageConstant)
	flagSet.BoolVarP(&flagValues.reverseOrder, reverseFlagNameConstant, reverseFlagShorthandConstant, false, reverseFlagUsageConstant)
	flagSet.BoolVarP(&flagValues.absolutePaths, absoluteFlagNameConstant, absoluteFlagShorthandConstant, false, absoluteFlagUsageConstant)
	flagSet.StringVarP(&flagValues.topDirectory, topDirectoryFlagNameConstant, topDirectoryFlagShorthandConstant, "", topDirectoryFlagUsageConstant)
	flagSet.StringVarP(&flagValues.startDirectory, startFlagNameConstant, startFlagShorthandConstant, "", startFlagUsageConstant)
	flagSet.BoolVarP(&flagValues.logical, logicalFlagNameConstant, logicalFlagShorthandConstant, false, logicalFlagUsageConstant)

	command.SetFlagErrorFunc(func(_ *cobra.Command, flagError error) error {
		return NewUsageError(flagError.Error())
	})

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, flagValues *commandFlagValues) error {
	if len(arguments) == 0 {
		return NewUsageError(missingTargetsMessageConstant)
	}

	configuration := builder.resolveConfiguration()
	flagSet := command.Flags()

	options := Options{
		MatchAll:      configuration.MatchAll,
		ReverseOrder:  configuration.ReverseOrder,
		AbsolutePaths: configuration.AbsolutePaths,
	}
	if flagSet.Changed(allFlagNameConstant) {
		options.MatchAll = flagValues.matchAll
	}
	if flagSet.Changed(reverseFlagNameConstant) {
		options.ReverseOrder = flagValues.reverseOrder
	}
	if flagSet.Changed(absoluteFlagNameConstant) {
		options.AbsolutePaths = flagValues.absolutePaths
	}

	logical := configuration.Logical
	if flagSet.Changed(logicalFlagNameConstant) {
		logical = flagValues.logical
	}

	topDirectory := configuration.TopDirectory
	if flagSet.Changed(topDirectoryFlagNameConstant) {
		topDirectory = flagValues.topDirectory
	}

	logger := builder.resolveLogger()
	service, serviceError := NewService(ServiceDependencies{
		FileSystem:  builder.resolveFileSystem(),
		Logger:      logger,
		Parallelism: configuration.Parallelism,
	})
	if serviceError != nil {
		return serviceError
	}

	logicalWorkingDirectory, _ := builder.resolveEnvironmentLookup()(logicalWorkingDirectoryEnvironmentNameConstant)

	searchContext, resolveError := service.Resolve(ResolveRequest{
		Targets:                 arguments,
		Options:                 options,
		StartDirectory:          flagValues.startDirectory,
		TopDirectory:            topDirectory,
		Logical:                 logical,
		LogicalWorkingDirectory: logicalWorkingDirectory,
	})
	if resolveError != nil {
		return resolveError
	}

	report, searchError := service.Search(command.Context(), searchContext)
	if searchError != nil {
		return searchError
	}

	logger.Info(
		searchCompletedMessageConstant,
		zap.Int(logFieldTargetCountConstant, len(report.Results)),
		zap.Int(logFieldMatchCountConstant, report.MatchCount()),
	)

	renderer := NewPathRenderer(searchContext.TopDirectory(), options.AbsolutePaths)
	if writeError := WriteReport(command.OutOrStdout(), report, renderer); writeError != nil {
		return writeError
	}

	if !report.Found() {
		return ErrNoMatches
	}
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem == nil {
		return filesystem.NewOSFileSystem()
	}
	return builder.FileSystem
}

func (builder *CommandBuilder) resolveEnvironmentLookup() EnvironmentLookup {
	if builder.EnvironmentLookup == nil {
		return os.LookupEnv
	}
	return builder.EnvironmentLookup
}

// IsNoMatches reports whether executionError signals that no target was found.
func IsNoMatches(executionError error) bool {
	return errors.Is(executionError, ErrNoMatches)
}
