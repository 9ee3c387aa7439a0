package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/ess/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Transform the given stylesheets, or every stylesheet under the root",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			verbose, _ := cmd.Flags().GetBool("verbose")
			return c.app.Run(cmd.Context(), cwd, args, app.RunOptions{
				NoCache: noCache,
				Verbose: verbose,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Reprocess every input, bypassing stored build records")
	return cmd
}
