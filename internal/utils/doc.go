// Package utils exposes infrastructure shared by the findup command.
//
// It houses ConfigurationLoader, which layers embedded defaults, configuration
// files, and FINDUP_* environment variables through Viper, and LoggerFactory,
// which builds zap loggers for the diagnostic stream on stderr.
package utils
