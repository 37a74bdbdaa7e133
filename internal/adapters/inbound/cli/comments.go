package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/htmlcheck/internal/domain"
)

func newCommentsCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "comments <file>",
		Short: "Print review comments for a validated file as JSON",
		Long:  "Convert validator errors and warnings for <file> into review comments. Plain info and non-document errors are dropped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := loadMessages(cmd, reportPath)
			if err != nil {
				return err
			}
			return renderJSON(cmd, domain.BuildReviewComments(args[0], messages))
		},
	}

	addReportFlag(cmd, &reportPath)

	return cmd
}
