package utils_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/findup/internal/utils"
)

const (
	testLoggerFactoryCaseSupportedFormatConstant   = "supported_log_level_%s_format_%s"
	testLoggerFactoryCaseUnsupportedLevelConstant  = "unsupported_log_level"
	testLoggerFactoryCaseUnsupportedFormatConstant = "unsupported_log_format"
	testLoggerFactorySubtestTemplateConstant       = "%d_%s"
	testInvalidLogLevelConstant                    = "invalid"
	testInvalidLogFormatConstant                   = "invalid"
	testLogMessageConstant                         = "logger_factory_test_message"
	testLoggerFactoryCaseUnnormalizedConstant      = "unnormalized_log_level"
	testLoggerFactoryCaseLevelFilteringConstant    = "level_filtering"
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name                string
		requestedLogLevel   utils.LogLevel
		requestedLogFormat  utils.LogFormat
		expectError         bool
		expectStructuredLog bool
	}{
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelDebug, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelDebug,
			requestedLogFormat:  utils.LogFormatStructured,
			expectError:         false,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatStructured,
			expectError:         false,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatConsole),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatConsole,
			expectError:         false,
			expectStructuredLog: false,
		},
		{
			name:               testLoggerFactoryCaseUnnormalizedConstant,
			requestedLogLevel:  utils.LogLevel(" DEBUG "),
			requestedLogFormat: utils.LogFormatConsole,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedLevelConstant,
			requestedLogLevel:  utils.LogLevel(testInvalidLogLevelConstant),
			requestedLogFormat: utils.LogFormatStructured,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedFormatConstant,
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat(testInvalidLogFormatConstant),
			expectError:        true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			loggerFactory := utils.NewLoggerFactory()

			pipeReader, pipeWriter, pipeError := os.Pipe()
			require.NoError(testInstance, pipeError)

			originalStderr := os.Stderr
			os.Stderr = pipeWriter

			logger, creationError := loggerFactory.CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)

			os.Stderr = originalStderr

			if testCase.expectError {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, logger)

				require.NoError(testInstance, pipeWriter.Close())
				require.NoError(testInstance, pipeReader.Close())
				return
			}

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, logger)

			logger.Info(testLogMessageConstant)
			syncError := logger.Sync()
			if syncError != nil {
				require.True(testInstance, errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL))
			}

			require.NoError(testInstance, pipeWriter.Close())

			capturedOutput, readError := io.ReadAll(pipeReader)
			require.NoError(testInstance, readError)
			require.NoError(testInstance, pipeReader.Close())

			trimmedOutput := bytes.TrimSpace(capturedOutput)
			require.NotEmpty(testInstance, trimmedOutput)
			require.Contains(testInstance, string(trimmedOutput), testLogMessageConstant)

			isJSONLog := json.Valid(trimmedOutput)
			if testCase.expectStructuredLog {
				require.True(testInstance, isJSONLog)
			} else {
				require.False(testInstance, isJSONLog)
			}
		})
	}
}

func TestLoggerFactorySuppressesMessagesBelowLevel(testInstance *testing.T) {
	testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, 0, testLoggerFactoryCaseLevelFilteringConstant), func(testInstance *testing.T) {
		pipeReader, pipeWriter, pipeError := os.Pipe()
		require.NoError(testInstance, pipeError)

		originalStderr := os.Stderr
		os.Stderr = pipeWriter
		logger, creationError := utils.NewLoggerFactory().CreateLogger(utils.LogLevelError, utils.LogFormatStructured)
		os.Stderr = originalStderr
		require.NoError(testInstance, creationError)

		logger.Info(testLogMessageConstant)
		logger.Debug(testLogMessageConstant)
		_ = logger.Sync()

		require.NoError(testInstance, pipeWriter.Close())
		capturedOutput, readError := io.ReadAll(pipeReader)
		require.NoError(testInstance, readError)
		require.NoError(testInstance, pipeReader.Close())
		require.Empty(testInstance, bytes.TrimSpace(capturedOutput))
	})
}

func TestParseLogSettings(testInstance *testing.T) {
	testCases := []struct {
		name              string
		levelName         string
		formatName        string
		expectedLogLevel  utils.LogLevel
		expectedLogFormat utils.LogFormat
		expectError       bool
	}{
		{name: "canonical_names", levelName: "warn", formatName: "structured", expectedLogLevel: utils.LogLevelWarn, expectedLogFormat: utils.LogFormatStructured},
		{name: "mixed_case_and_whitespace", levelName: " DEBUG ", formatName: "Console", expectedLogLevel: utils.LogLevelDebug, expectedLogFormat: utils.LogFormatConsole},
		{name: "unknown_level", levelName: "verbose", formatName: "console", expectError: true},
		{name: "unknown_format", levelName: "info", formatName: "xml", expectError: true},
		{name: "empty_level", levelName: "", formatName: "console", expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			var logLevel utils.LogLevel
			levelError := logLevel.UnmarshalText([]byte(testCase.levelName))
			var logFormat utils.LogFormat
			formatError := logFormat.UnmarshalText([]byte(testCase.formatName))

			if testCase.expectError {
				require.Error(testInstance, errors.Join(levelError, formatError))
				return
			}

			require.NoError(testInstance, levelError)
			require.NoError(testInstance, formatError)
			require.Equal(testInstance, testCase.expectedLogLevel, logLevel)
			require.Equal(testInstance, testCase.expectedLogFormat, logFormat)

			parsedLogLevel, parseError := utils.ParseLogLevel(testCase.levelName)
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, logLevel, parsedLogLevel)
		})
	}
}
