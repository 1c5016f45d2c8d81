package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jobforgeproject/jobforge/internal/jobforgectl"
)

func versionCmd() *cobra.Command {
	a := jobforgectl.New()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Version()
		},
	}
	return cmd
}
