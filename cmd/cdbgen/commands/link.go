package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cdbgen/internal/app"
)

func (c *CLI) newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <compiler>...",
		Short: "Create compiler shims pointing at this executable",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")

			created, err := c.app.Link(cmd.Context(), app.LinkOptions{
				Dir:       dir,
				Compilers: args,
				Force:     force,
			})
			for _, path := range created {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().String("dir", "", "Directory receiving the shims (default: directory of the executable)")
	cmd.Flags().BoolP("force", "f", false, "Replace existing files")
	return cmd
}
