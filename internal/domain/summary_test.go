package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/openkraft/htmlcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessagesSummary_NoMessages(t *testing.T) {
	assert.Equal(t, " no results", domain.FormatMessagesSummary(nil))
	assert.Equal(t, " no results", domain.FormatMessagesSummary([]domain.DiagnosticMessage{}))
}

func TestFormatMessagesSummary_SingleMessageInline(t *testing.T) {
	m := []domain.DiagnosticMessage{
		{Type: domain.MessageTypeInfo, Message: "Using the preset for SVG 1.1 + URL + HTML + MathML 3.0 based on the root namespace."},
	}
	expected := " info: Using the preset for SVG 1.1 + URL + HTML + MathML 3.0 based on the root namespace."
	assert.Equal(t, expected, domain.FormatMessagesSummary(m))
}

func TestFormatMessagesSummary_SingleMessageWithLocation(t *testing.T) {
	m := []domain.DiagnosticMessage{
		{Type: domain.MessageTypeError, Message: "huh?", Location: loc(0, 1, 2)},
	}
	assert.Equal(t, " [2:1] error: huh?", domain.FormatMessagesSummary(m))
}

func TestFormatMessagesSummary_OneLinePerMessage(t *testing.T) {
	m := []domain.DiagnosticMessage{
		{Type: domain.MessageTypeInfo, Message: "what?"},
		{Type: domain.MessageTypeError, Message: "huh?", Extract: "x", Location: loc(0, 1, 2)},
		{Type: domain.MessageTypeInfo, SubType: "warning", Extract: "x", Message: "no?", Location: loc(5, 4, 3)},
		{Type: domain.MessageTypeError, Message: "some?"},
		{Type: domain.MessageTypeNonDocumentError, SubType: "io", Message: "Non-XML Content-Type: “application/pdf”."},
		{Type: domain.MessageTypeInfo, SubType: "warning", Message: "where?"},
	}

	expected := `
  info: what?
  [2:1] error: huh?
  [3:4] warning: no?
  error: some?
  io: Non-XML Content-Type: “application/pdf”.
  warning: where?`
	assert.Equal(t, expected, domain.FormatMessagesSummary(m))
}

func TestFormatMessagesSummary_PrefixNeedsOnlyLineAndColumn(t *testing.T) {
	var m []domain.DiagnosticMessage
	data := `[{"type":"error","message":"a","lastLine":2,"lastColumn":1},{"type":"error","message":"b"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &m))

	assert.Equal(t, "\n  [2:1] error: a\n  error: b", domain.FormatMessagesSummary(m))
}

func TestFormatMessagesSummary_UnknownTypePassesThrough(t *testing.T) {
	m := []domain.DiagnosticMessage{
		{Type: "fatal", SubType: "odd", Message: "a"},
		{Type: domain.MessageTypeInfo, SubType: "hint", Message: "b"},
	}
	assert.Equal(t, "\n  fatal: a\n  info: b", domain.FormatMessagesSummary(m))
}

func TestFormatMessagesSummary_Idempotent(t *testing.T) {
	m := []domain.DiagnosticMessage{
		{Type: domain.MessageTypeError, Message: "a", Location: loc(1, 2, 3)},
		{Type: domain.MessageTypeInfo, Message: "b"},
	}
	assert.Equal(t, domain.FormatMessagesSummary(m), domain.FormatMessagesSummary(m))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		msg      domain.DiagnosticMessage
		expected string
	}{
		{"error", domain.DiagnosticMessage{Type: domain.MessageTypeError}, "error"},
		{"info", domain.DiagnosticMessage{Type: domain.MessageTypeInfo}, "info"},
		{"warning", domain.DiagnosticMessage{Type: domain.MessageTypeInfo, SubType: "warning"}, "warning"},
		{"non-document io", domain.DiagnosticMessage{Type: domain.MessageTypeNonDocumentError, SubType: "io"}, "io"},
		{"error subtype ignored", domain.DiagnosticMessage{Type: domain.MessageTypeError, SubType: "fatal"}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Label(tt.msg))
		})
	}
}
