package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/htmlcheck/internal/adapters/outbound/config"
	"github.com/openkraft/htmlcheck/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		failOn string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .htmlcheck.yaml configuration file",
		Long:  "Create a .htmlcheck.yaml with commented defaults in the given directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.ProjectConfig{FailOn: domain.FailOn(failOn)}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg.EffectiveFailOn())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&failOn, "fail-on", string(domain.FailOnError), "Lowest severity that fails a review (error, warn, never)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .htmlcheck.yaml")

	return cmd
}

func generateConfig(failOn domain.FailOn) string {
	return fmt.Sprintf(`# htmlcheck configuration

fail_on: %s

# Drop validator messages whose text matches any of these regular expressions.
# ignore_messages:
#   - "^Trailing slash on void elements"

# Drop messages by type or label (error, info, warning, io, ...).
# ignore_types:
#   - info

# Append every review to .htmlcheck/history/reviews.json.
record_history: false
`, failOn)
}
