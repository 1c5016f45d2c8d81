package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jobforgeproject/jobforge/internal/jobforgectl"
)

func inspectCmd() *cobra.Command {
	a := jobforgectl.New()
	cmd := &cobra.Command{
		Use:   "inspect [script]",
		Short: "Print the resource parameters extracted from a job script",
		Long: `Print the resource parameters extracted from a job script as YAML,
along with any directive lines that are preserved verbatim because their key
is unrecognized or their value does not parse.

The script is read from the given file, or from standard input when the
argument is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openScript(args)
			if err != nil {
				return err
			}
			defer closeIn()
			return a.Inspect(in)
		},
	}
	return cmd
}
