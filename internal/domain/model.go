package domain

import "encoding/json"

// MessageType is the validator's primary classifier for a message.
type MessageType string

const (
	MessageTypeError            MessageType = "error"
	MessageTypeInfo             MessageType = "info"
	MessageTypeNonDocumentError MessageType = "non-document-error"
)

// SubTypeWarning marks an info message that is really a warning.
const SubTypeWarning = "warning"

// DiagnosticMessage is one finding reported by the validator for a document.
type DiagnosticMessage struct {
	Type     MessageType
	SubType  string
	Message  string
	Extract  string
	Location *Location
}

// Location is where the validator places a message. Offset is nil when
// the validator reported a line and column without a highlighted extract.
type Location struct {
	Line   int
	Column int
	Offset *int
}

// HasOffset reports whether the location carries a highlight offset.
func (l *Location) HasOffset() bool {
	return l != nil && l.Offset != nil
}

// IsWarning reports whether the message is an info message with the warning subtype.
func (m DiagnosticMessage) IsWarning() bool {
	return m.Type == MessageTypeInfo && m.SubType == SubTypeWarning
}

// wireMessage mirrors the validator's flat JSON layout.
type wireMessage struct {
	Type        MessageType `json:"type"`
	SubType     string      `json:"subType"`
	Message     string      `json:"message"`
	Extract     string      `json:"extract"`
	HiliteStart *int        `json:"hiliteStart"`
	LastLine    *int        `json:"lastLine"`
	LastColumn  *int        `json:"lastColumn"`
}

// UnmarshalJSON keeps the location when lastLine and lastColumn are both
// present; hiliteStart only fills in the offset.
func (m *DiagnosticMessage) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = DiagnosticMessage{
		Type:    w.Type,
		SubType: w.SubType,
		Message: w.Message,
		Extract: w.Extract,
	}
	if w.LastLine != nil && w.LastColumn != nil {
		m.Location = &Location{Line: *w.LastLine, Column: *w.LastColumn, Offset: w.HiliteStart}
	}
	return nil
}

// Subcategory is the document type a comment applies to.
type Subcategory string

const (
	SubcategoryHTML Subcategory = "html"
	SubcategoryCSS  Subcategory = "css"
	SubcategorySVG  Subcategory = "svg"
)

// CommentCategory is the category stamped on every review comment.
const CommentCategory = "html-validator"

// Review comment severities.
const (
	SeverityError = "error"
	SeverityWarn  = "warn"
)

// ReviewComment is a normalized finding consumed by a code-review tool.
type ReviewComment struct {
	Category       string          `json:"category"`
	Subcategory    Subcategory     `json:"subcategory"`
	Severity       string          `json:"severity"`
	Detail         string          `json:"detail"`
	SourceLocation *SourceLocation `json:"sourceLocation,omitempty"`
}

// SourceLocation ties a review comment to a position in a file.
type SourceLocation struct {
	Path        string `json:"path"`
	Offset      int    `json:"offset"`
	ColumnFrom1 int    `json:"columnFrom1"`
	LineFrom1   int    `json:"lineFrom1"`
}
