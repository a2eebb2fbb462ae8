// Package cli constructs the findup command-line interface, wiring the Cobra
// root command, the Viper-backed configuration loader, and zap logging around
// the upward finder. ExitCode maps execution errors to process exit statuses.
package cli
