package domain

import (
	"path/filepath"
	"strings"
)

var subcategoriesByExt = map[string]Subcategory{
	".css": SubcategoryCSS,
	".svg": SubcategorySVG,
}

// SubcategoryFor infers the document type from the file extension.
// Anything that is not CSS or SVG is treated as HTML.
func SubcategoryFor(filePath string) Subcategory {
	if sub, ok := subcategoriesByExt[strings.ToLower(filepath.Ext(filePath))]; ok {
		return sub
	}
	return SubcategoryHTML
}

// BuildReviewComments converts validator messages for filePath into review
// comments. Errors and warnings are kept in input order; plain info and
// non-document errors are dropped.
func BuildReviewComments(filePath string, messages []DiagnosticMessage) []ReviewComment {
	comments := make([]ReviewComment, 0, len(messages))
	sub := SubcategoryFor(filePath)

	for _, m := range messages {
		var severity string
		switch {
		case m.Type == MessageTypeError:
			severity = SeverityError
		case m.IsWarning():
			severity = SeverityWarn
		default:
			continue
		}

		c := ReviewComment{
			Category:    CommentCategory,
			Subcategory: sub,
			Severity:    severity,
			Detail:      m.Message,
		}
		if m.Location.HasOffset() {
			c.SourceLocation = &SourceLocation{
				Path:        filePath,
				Offset:      *m.Location.Offset,
				ColumnFrom1: m.Location.Column,
				LineFrom1:   m.Location.Line,
			}
		}
		comments = append(comments, c)
	}

	return comments
}
