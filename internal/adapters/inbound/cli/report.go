package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/htmlcheck/internal/adapters/outbound/report"
	"github.com/openkraft/htmlcheck/internal/domain"
)

// loadMessages reads the validator report named by reportPath, with "-"
// reading the command's stdin.
func loadMessages(cmd *cobra.Command, reportPath string) ([]domain.DiagnosticMessage, error) {
	messages, err := report.NewWithStdin(cmd.InOrStdin()).LoadFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("loading report: %w", err)
	}
	newLogger(cmd).Debug("loaded report", "path", reportPath, "messages", len(messages))
	return messages, nil
}

func addReportFlag(cmd *cobra.Command, reportPath *string) {
	cmd.Flags().StringVarP(reportPath, "report", "r", report.StdinPath, `Validator JSON report ("-" reads stdin)`)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
