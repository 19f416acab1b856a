package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cdbgen/internal/app"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [flags] -- <compiler> [args...]",
		Short: "Record a compiler command line without running it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _ := cmd.Flags().GetString("database")
			directory, _ := cmd.Flags().GetString("directory")
			verbose, _ := cmd.Flags().GetBool("verbose")

			res, err := c.app.Record(cmd.Context(), app.RecordOptions{
				Database:  database,
				Directory: directory,
				Command:   args,
			})
			if err != nil {
				return err
			}

			if verbose {
				state := "unchanged"
				if res.Changed {
					state = "updated"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, digest %s\n", state, res.Records, res.Digest)
			}
			return nil
		},
	}
	// Everything from the compiler name on belongs to the recorded command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("database", "d", "", "Path of the compilation database (default from configuration)")
	cmd.Flags().StringP("directory", "C", "", "Working directory to record (default: current directory)")
	cmd.Flags().BoolP("verbose", "v", false, "Print the result of the update")
	return cmd
}
