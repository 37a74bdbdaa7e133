package domain

// Review statuses.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// ReviewResult is the outcome of converting one document's validator report.
type ReviewResult struct {
	File        string          `json:"file"`
	Subcategory Subcategory     `json:"subcategory"`
	Status      string          `json:"status"`
	Comments    []ReviewComment `json:"comments"`
	Summary     string          `json:"summary"`
	Counts      ReviewCounts    `json:"counts"`
	CommitHash  string          `json:"commit_hash,omitempty"`
}

// ReviewCounts tallies comments by severity and messages dropped by config.
type ReviewCounts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Ignored  int `json:"ignored"`
}

// CountComments tallies comments by severity.
func CountComments(comments []ReviewComment) ReviewCounts {
	var c ReviewCounts
	for _, rc := range comments {
		switch rc.Severity {
		case SeverityError:
			c.Errors++
		case SeverityWarn:
			c.Warnings++
		}
	}
	return c
}

// StatusFor derives pass/warn/fail from comment counts and the fail_on setting.
func StatusFor(counts ReviewCounts, failOn FailOn) string {
	status := StatusPass
	switch {
	case counts.Errors > 0:
		status = StatusFail
	case counts.Warnings > 0:
		status = StatusWarn
	}

	switch failOn {
	case FailOnNever:
		if status == StatusFail {
			status = StatusWarn
		}
	case FailOnWarn:
		if status == StatusWarn {
			status = StatusFail
		}
	}
	return status
}

// ReviewEntry is one recorded review run.
type ReviewEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	File       string `json:"file"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Status     string `json:"status"`
}
