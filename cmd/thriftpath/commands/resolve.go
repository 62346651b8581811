package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/thriftpath/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [entries...]",
		Short: "Stage schema files from the classpath and print include directories",
		Long: "Resolve empties the staging directory, extracts the .thrift files found in .jar\n" +
			"classpath entries into it and prints one include directory per line. Positional\n" +
			"entries are appended to the classpath from the config file.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			render, err := formatter(format)
			if err != nil {
				return err
			}

			configPath, explicit, state := configFlags(cmd)
			stagingRoot, _ := cmd.Flags().GetString("staging")
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")

			res, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath:     configPath,
				ConfigRequired: explicit,
				StagingRoot:    stagingRoot,
				StatePath:      state,
				Classpath:      args,
				Force:          force,
				Jobs:           jobs,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringP("staging", "s", "", "Staging directory for extracted schema files")
	cmd.Flags().StringP("format", "f", formatLines, "Output format: lines, flags or json")
	cmd.Flags().Bool("force", false, "Resolve again even if the classpath is unchanged")
	cmd.Flags().IntP("jobs", "j", 0, "Number of archives extracted in parallel")

	return cmd
}
