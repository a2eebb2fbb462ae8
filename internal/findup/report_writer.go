package findup

import (
	"io"
	"strings"
)

const lineTerminatorConstant = "\n"

// FormatReport renders every match on its own line, with a blank line between the blocks of
// consecutive targets and none after the last one.
func FormatReport(report SearchReport, renderer PathRenderer) string {
	var builder strings.Builder
	for resultIndex, result := range report.Results {
		for _, matchedPath := range result.Matches {
			builder.WriteString(renderer.Render(matchedPath))
			builder.WriteString(lineTerminatorConstant)
		}
		if resultIndex != len(report.Results)-1 {
			builder.WriteString(lineTerminatorConstant)
		}
	}
	return builder.String()
}

// WriteReport writes the formatted report in a single write.
func WriteReport(writer io.Writer, report SearchReport, renderer PathRenderer) error {
	formattedReport := FormatReport(report, renderer)
	if len(formattedReport) == 0 {
		return nil
	}
	_, writeError := io.WriteString(writer, formattedReport)
	return writeError
}
