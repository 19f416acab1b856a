package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cdbgen/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the compilation database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, _ := cmd.Flags().GetString("database")
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), app.ShowOptions{
				Database: database,
				JSON:     asJSON,
			})
		},
	}
	cmd.Flags().StringP("database", "d", "", "Path of the compilation database (default from configuration)")
	cmd.Flags().Bool("json", false, "Print the normalized JSON document")
	return cmd
}
