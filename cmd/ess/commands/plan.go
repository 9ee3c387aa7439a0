package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [paths...]",
		Short: "Print the planned outputs per input without transforming anything",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			plan, err := c.app.Plan(cwd, args)
			if err != nil {
				return err
			}

			inputs := make([]string, 0, len(plan))
			for input := range plan {
				inputs = append(inputs, input)
			}
			sort.Strings(inputs)

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				outputs := plan[input]
				if len(outputs) == 0 {
					fmt.Fprintf(out, "%s -> (nothing)\n", input)
					continue
				}
				for _, output := range outputs {
					fmt.Fprintf(out, "%s -> %s\n", input, output)
				}
			}
			return nil
		},
	}
}
