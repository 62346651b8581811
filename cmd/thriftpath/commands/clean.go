package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/thriftpath/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove staging directories and their recorded results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _, state := configFlags(cmd)
			stagingRoot, _ := cmd.Flags().GetString("staging")
			all, _ := cmd.Flags().GetBool("all")

			removed, err := c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath:  configPath,
				StagingRoot: stagingRoot,
				StatePath:   state,
				All:         all,
			})
			for _, root := range removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", root)
			}
			return err
		},
	}

	cmd.Flags().StringP("staging", "s", "", "Staging directory to remove")
	cmd.Flags().BoolP("all", "a", false, "Remove every staging directory recorded in the state file")

	return cmd
}
