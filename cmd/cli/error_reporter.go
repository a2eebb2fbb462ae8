package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/temirov/findup/internal/findup"
)

const (
	errorPrefixConstant       = "Error:"
	errorLineTemplateConstant = " %v\n"
	usageHintTemplateConstant = "Run '%s --help' for usage.\n"
	applicationNameConstant   = "findup"
)

// ErrorReporter writes fatal errors to a terminal or stream, coloring the prefix when the
// destination is a terminal.
type ErrorReporter struct {
	writer      io.Writer
	prefixColor *color.Color
}

// NewErrorReporter builds a reporter for the provided file, enabling color only for terminals.
func NewErrorReporter(file *os.File) *ErrorReporter {
	if file == nil {
		return NewErrorReporterWithWriter(nil, false)
	}
	colorEnabled := isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	return NewErrorReporterWithWriter(file, colorEnabled)
}

// NewErrorReporterWithWriter builds a reporter for an arbitrary writer.
func NewErrorReporterWithWriter(writer io.Writer, colorEnabled bool) *ErrorReporter {
	prefixColor := color.New(color.FgRed, color.Bold)
	if colorEnabled {
		prefixColor.EnableColor()
	} else {
		prefixColor.DisableColor()
	}
	return &ErrorReporter{writer: writer, prefixColor: prefixColor}
}

// Report prints executionError. Usage errors are followed by a pointer to --help.
func (reporter *ErrorReporter) Report(executionError error) {
	if reporter == nil || reporter.writer == nil || !ShouldReport(executionError) {
		return
	}

	reporter.prefixColor.Fprint(reporter.writer, errorPrefixConstant)
	fmt.Fprintf(reporter.writer, errorLineTemplateConstant, executionError)

	var usageError findup.UsageError
	if errors.As(executionError, &usageError) {
		fmt.Fprintf(reporter.writer, usageHintTemplateConstant, applicationNameConstant)
	}
}
