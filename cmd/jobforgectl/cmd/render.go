package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jobforgeproject/jobforge/internal/jobforgectl"
)

func renderCmd() *cobra.Command {
	a := jobforgectl.New()
	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Regenerate a job script from its resource directives",
		Long: `Regenerate a job script, applying parameter edits to its #SBATCH directives.

The script is read from the given file, or from standard input when the
argument is omitted or "-". Directive lines with unrecognized keys and the
script body are preserved verbatim.

Examples:
  jobforgectl render job.sh --set mem=8G --clear time
  cat job.sh | jobforgectl render --preset gpu --set job-name=train`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := cmd.Flags().GetStringArray("set")
			if err != nil {
				return err
			}
			clears, err := cmd.Flags().GetStringArray("clear")
			if err != nil {
				return err
			}
			preset, err := cmd.Flags().GetString("preset")
			if err != nil {
				return err
			}
			outPath, err := cmd.Flags().GetString("output-file")
			if err != nil {
				return err
			}

			edits, err := parseEditFlags(sets, clears)
			if err != nil {
				return err
			}
			in, closeIn, err := openScript(args)
			if err != nil {
				return err
			}
			defer closeIn()

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				a.Out = f
			}
			if err := a.Render(in, preset, edits); err != nil {
				return err
			}
			if outPath != "" {
				log.Infof("Wrote %s", outPath)
			}
			return nil
		},
	}
	registerEditFlags(cmd.Flags())
	cmd.Flags().String("preset", "", "name of a preset parameter bundle from the config file")
	cmd.Flags().String("output-file", "", "write the regenerated script to this file instead of standard output")
	return cmd
}
