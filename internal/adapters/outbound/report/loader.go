package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/openkraft/htmlcheck/internal/domain"
)

// ErrInvalidReport is returned when the input is not a validator JSON report.
var ErrInvalidReport = errors.New("invalid validator report")

// StdinPath makes LoadFile read from the loader's stdin reader.
const StdinPath = "-"

// document is the validator's top-level JSON object.
type document struct {
	Messages []domain.DiagnosticMessage `json:"messages"`
}

// JSONLoader implements domain.ReportLoader for validator JSON output.
type JSONLoader struct {
	stdin io.Reader
}

// New creates a JSONLoader reading "-" from os.Stdin.
func New() *JSONLoader { return &JSONLoader{stdin: os.Stdin} }

// NewWithStdin creates a JSONLoader reading "-" from r.
func NewWithStdin(r io.Reader) *JSONLoader { return &JSONLoader{stdin: r} }

// Load decodes either {"messages": [...]} or a bare array of messages.
// Empty input yields no messages.
func (l *JSONLoader) Load(r io.Reader) ([]domain.DiagnosticMessage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var messages []domain.DiagnosticMessage
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
		}
		return messages, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	return doc.Messages, nil
}

// LoadFile loads a report from path, or from stdin when path is "-".
func (l *JSONLoader) LoadFile(path string) ([]domain.DiagnosticMessage, error) {
	if path == StdinPath {
		return l.Load(l.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	messages, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return messages, nil
}
