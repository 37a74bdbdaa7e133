package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/htmlcheck/internal/domain"
)

func newSummaryCmd() *cobra.Command {
	var (
		reportPath string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a readable summary of a validator report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := loadMessages(cmd, reportPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), title+":"+domain.FormatMessagesSummary(messages))
			return nil
		},
	}

	addReportFlag(cmd, &reportPath)
	cmd.Flags().StringVar(&title, "title", domain.CommentCategory, "Text printed before the summary")

	return cmd
}
