package domain

import "io"

// ReportLoader decodes a validator JSON report into diagnostic messages.
type ReportLoader interface {
	Load(r io.Reader) ([]DiagnosticMessage, error)
}

// ConfigLoader reads project configuration from a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ReviewHistory persists review runs for a project.
type ReviewHistory interface {
	Save(projectPath string, entry ReviewEntry) error
	Load(projectPath string) ([]ReviewEntry, error)
}

// GitInfo reports version-control details of a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
