package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jobforgeproject/jobforge/internal/jobforgectl"
)

func patternCmd() *cobra.Command {
	a := jobforgectl.New()
	cmd := &cobra.Command{
		Use:   "pattern <regex> <sample>",
		Short: "Test a regular expression against a sample text",
		Long: `Test a regular expression against a sample text and report match and
capture diagnostics. Patterns are compiled with multiline semantics, so ^
and $ match at line boundaries.

Capture groups can be labelled positionally with repeated --alias flags.

Example:
  jobforgectl pattern 'Loss: ([\d.]+)' "$(cat train.log)" --alias loss`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := cmd.Flags().GetStringArray("alias")
			if err != nil {
				return err
			}
			return a.TestPattern(args[0], aliases, args[1])
		},
	}
	cmd.Flags().StringArray("alias", nil, "label for the capture group at this position (repeatable)")
	return cmd
}
