package application

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/openkraft/htmlcheck/internal/domain"
)

// ReviewRequest describes one document's validator report to review.
type ReviewRequest struct {
	ProjectPath string
	FilePath    string
	Messages    []domain.DiagnosticMessage
	// Strict fails the review on warnings regardless of fail_on.
	Strict bool
}

// ReviewService turns validator messages into review comments and a summary,
// applying project configuration and recording history.
type ReviewService struct {
	configLoader domain.ConfigLoader
	history      domain.ReviewHistory
	git          domain.GitInfo
	logger       *slog.Logger
	now          func() time.Time
}

// NewReviewService creates a ReviewService. A nil logger discards output.
func NewReviewService(
	configLoader domain.ConfigLoader,
	history domain.ReviewHistory,
	git domain.GitInfo,
	logger *slog.Logger,
) *ReviewService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ReviewService{
		configLoader: configLoader,
		history:      history,
		git:          git,
		logger:       logger,
		now:          time.Now,
	}
}

// Review converts req.Messages for req.FilePath into a ReviewResult.
func (s *ReviewService) Review(req ReviewRequest) (*domain.ReviewResult, error) {
	cfg, err := s.configLoader.Load(req.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log := s.logger.With("file", req.FilePath)
	log.Debug("loaded config", "fail_on", cfg.EffectiveFailOn(), "record_history", cfg.RecordHistory)

	messages := cfg.Filter(req.Messages)
	ignored := len(req.Messages) - len(messages)
	if ignored > 0 {
		log.Debug("ignored messages", "count", ignored)
	}

	comments := domain.BuildReviewComments(req.FilePath, messages)
	counts := domain.CountComments(comments)
	counts.Ignored = ignored

	failOn := cfg.EffectiveFailOn()
	if req.Strict {
		failOn = domain.FailOnWarn
	}

	result := &domain.ReviewResult{
		File:        req.FilePath,
		Subcategory: domain.SubcategoryFor(req.FilePath),
		Status:      domain.StatusFor(counts, failOn),
		Comments:    comments,
		Summary:     domain.FormatMessagesSummary(messages),
		Counts:      counts,
	}

	if s.git != nil && s.git.IsGitRepo(req.ProjectPath) {
		hash, err := s.git.CommitHash(req.ProjectPath)
		if err != nil {
			log.Debug("no commit hash", "error", err)
		}
		result.CommitHash = hash
	}

	if cfg.RecordHistory && s.history != nil {
		s.record(req.ProjectPath, result, log)
	}

	return result, nil
}

// record appends result to the project history. Failures are logged, not returned.
func (s *ReviewService) record(projectPath string, result *domain.ReviewResult, log *slog.Logger) {
	entry := domain.ReviewEntry{
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		CommitHash: result.CommitHash,
		File:       result.File,
		Errors:     result.Counts.Errors,
		Warnings:   result.Counts.Warnings,
		Status:     result.Status,
	}
	if err := s.history.Save(projectPath, entry); err != nil {
		log.Warn("recording review history failed", "error", err)
		return
	}
	log.Debug("recorded review history", "status", entry.Status)
}

// History returns the recorded reviews for a project.
func (s *ReviewService) History(projectPath string) ([]domain.ReviewEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}
