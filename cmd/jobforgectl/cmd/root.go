package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jobforgeproject/jobforge/internal/jobforgectl"
)

var cfgFile string

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobforgectl",
		Short: "jobforgectl composes batch-computation job scripts.",
		Long: `jobforgectl composes batch-computation job scripts.

It keeps a script's #SBATCH resource directives in sync with structured
parameter edits: directives it does not recognize and the script body are
always preserved verbatim.

Named parameter presets can be saved in a config file so they don't have to
be spelled out on every command. The location of this file can be passed in
using the --config argument. If not provided, $HOME/.jobforgectl.yaml is used.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.jobforgectl.yaml)")

	cmd.AddCommand(
		renderCmd(),
		inspectCmd(),
		patternCmd(),
		versionCmd(),
	)

	return cmd
}

// Execute runs the root command and exits with a non-zero status on error.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initParams(cmd *cobra.Command, params *jobforgectl.Params) error {
	if err := jobforgectl.LoadCommandlineArgsFromConfigFile(cfgFile); err != nil {
		return err
	}
	return params.LoadPresets()
}
