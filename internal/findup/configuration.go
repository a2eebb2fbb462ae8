package findup

import "strings"

const (
	configurationAllKeyConstant          = "all"
	configurationReverseKeyConstant      = "reverse"
	configurationAbsoluteKeyConstant     = "absolute"
	configurationLogicalKeyConstant      = "logical"
	configurationTopDirectoryKeyConstant = "topdir"
	configurationParallelismKeyConstant  = "parallelism"
	configurationKeySeparatorConstant    = "."
)

// CommandConfiguration captures persisted defaults for the findup command.
type CommandConfiguration struct {
	MatchAll      bool   `mapstructure:"all"`
	ReverseOrder  bool   `mapstructure:"reverse"`
	AbsolutePaths bool   `mapstructure:"absolute"`
	Logical       bool   `mapstructure:"logical"`
	TopDirectory  string `mapstructure:"topdir"`
	Parallelism   int    `mapstructure:"parallelism"`
}

// DefaultCommandConfiguration provides baseline configuration values for findup.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		MatchAll:      false,
		ReverseOrder:  false,
		AbsolutePaths: false,
		Logical:       false,
		TopDirectory:  "",
		Parallelism:   DefaultParallelism,
	}
}

// DefaultConfigurationValues returns viper defaults keyed under the provided configuration prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	prefix := strings.TrimSpace(configurationKeyPrefix)
	if len(prefix) > 0 && !strings.HasSuffix(prefix, configurationKeySeparatorConstant) {
		prefix += configurationKeySeparatorConstant
	}

	return map[string]any{
		prefix + configurationAllKeyConstant:          defaults.MatchAll,
		prefix + configurationReverseKeyConstant:      defaults.ReverseOrder,
		prefix + configurationAbsoluteKeyConstant:     defaults.AbsolutePaths,
		prefix + configurationLogicalKeyConstant:      defaults.Logical,
		prefix + configurationTopDirectoryKeyConstant: defaults.TopDirectory,
		prefix + configurationParallelismKeyConstant:  defaults.Parallelism,
	}
}

// Sanitize trims the top directory and replaces a non-positive parallelism with the default.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TopDirectory = strings.TrimSpace(configuration.TopDirectory)
	if sanitized.Parallelism < 1 {
		sanitized.Parallelism = DefaultParallelism
	}
	return sanitized
}
