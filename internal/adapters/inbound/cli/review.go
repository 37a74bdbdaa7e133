package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/htmlcheck/internal/adapters/outbound/config"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/history"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/tui"
	"github.com/openkraft/htmlcheck/internal/application"
	"github.com/openkraft/htmlcheck/internal/domain"
)

func newReviewService(cmd *cobra.Command) *application.ReviewService {
	return application.NewReviewService(config.New(), history.New(), gitinfo.New(), newLogger(cmd))
}

func newReviewCmd() *cobra.Command {
	var (
		reportPath string
		path       string
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "Review a validated file against project settings",
		Long:  "Build review comments and a summary for <file>, apply .htmlcheck.yaml ignore rules, and fail when the review status is fail.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			messages, err := loadMessages(cmd, reportPath)
			if err != nil {
				return err
			}

			result, err := newReviewService(cmd).Review(application.ReviewRequest{
				ProjectPath: absPath,
				FilePath:    args[0],
				Messages:    messages,
				Strict:      strict,
			})
			if err != nil {
				return fmt.Errorf("review failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReview(result))
			}

			if result.Status == domain.StatusFail {
				return fmt.Errorf("review failed: %d error(s), %d warning(s) in %s",
					result.Counts.Errors, result.Counts.Warnings, result.File)
			}
			return nil
		},
	}

	addReportFlag(cmd, &reportPath)
	cmd.Flags().StringVar(&path, "path", ".", "Project path holding .htmlcheck.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any warning")

	return cmd
}
