package domain

import (
	"fmt"
	"strings"
)

const noResults = " no results"

// FormatMessagesSummary renders messages as a human-readable block.
//
// A single message is rendered inline after one space. Several messages are
// rendered one per line, indented by two spaces, after a leading newline.
func FormatMessagesSummary(messages []DiagnosticMessage) string {
	switch len(messages) {
	case 0:
		return noResults
	case 1:
		return " " + summaryLine(messages[0])
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, "  "+summaryLine(m))
	}
	return "\n" + strings.Join(lines, "\n")
}

func summaryLine(m DiagnosticMessage) string {
	var prefix string
	if m.Location != nil {
		prefix = fmt.Sprintf("[%d:%d] ", m.Location.Line, m.Location.Column)
	}
	return prefix + Label(m) + ": " + m.Message
}

// Label returns the classifier shown for a message in summaries. Unknown
// types are passed through untouched.
func Label(m DiagnosticMessage) string {
	switch {
	case m.Type == MessageTypeNonDocumentError:
		return m.SubType
	case m.IsWarning():
		return SubTypeWarning
	default:
		return string(m.Type)
	}
}
