package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	jsonZapEncodingStringConstant        = "json"
	consoleZapEncodingStringConstant     = "console"
	standardErrorOutputPathConstant      = "stderr"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

// ParseLogLevel matches a level name case-insensitively, ignoring surrounding whitespace.
func ParseLogLevel(levelName string) (LogLevel, error) {
	normalizedLogLevel := LogLevel(strings.ToLower(strings.TrimSpace(levelName)))
	if _, levelExists := logLevelMapping[normalizedLogLevel]; !levelExists {
		return "", fmt.Errorf(unsupportedLogLevelTemplateConstant, levelName)
	}
	return normalizedLogLevel, nil
}

// UnmarshalText lets configuration decoding normalize and validate log levels.
func (logLevel *LogLevel) UnmarshalText(text []byte) error {
	parsedLogLevel, parseError := ParseLogLevel(string(text))
	if parseError != nil {
		return parseError
	}
	*logLevel = parsedLogLevel
	return nil
}

// ParseLogFormat matches a format name case-insensitively, ignoring surrounding whitespace.
func ParseLogFormat(formatName string) (LogFormat, error) {
	normalizedLogFormat := LogFormat(strings.ToLower(strings.TrimSpace(formatName)))
	if _, formatExists := logFormatEncodingMapping[normalizedLogFormat]; !formatExists {
		return "", fmt.Errorf(unsupportedLogFormatTemplateConstant, formatName)
	}
	return normalizedLogFormat, nil
}

// UnmarshalText lets configuration decoding normalize and validate log formats.
func (logFormat *LogFormat) UnmarshalText(text []byte) error {
	parsedLogFormat, parseError := ParseLogFormat(string(text))
	if parseError != nil {
		return parseError
	}
	*logFormat = parsedLogFormat
	return nil
}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: jsonZapEncodingStringConstant,
	LogFormatConsole:    consoleZapEncodingStringConstant,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger writing to stderr at the requested level and format.
// Names are expected in the canonical form produced by ParseLogLevel and ParseLogFormat.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoding, formatExists := logFormatEncodingMapping[requestedLogFormat]
	if !formatExists {
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.Encoding = encoding
	configuration.OutputPaths = []string{standardErrorOutputPathConstant}
	configuration.ErrorOutputPaths = []string{standardErrorOutputPathConstant}
	if requestedLogFormat == LogFormatConsole {
		configuration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		configuration.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, buildError := configuration.Build()
	if buildError != nil {
		return nil, buildError
	}

	return logger, nil
}
