package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/commands/options"
	"github.com/branyzp/whatsforlunch/pkg/runner/pick"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "build a meal pool from flags and pick one meal",
		Example: `
lunch pick -c hawker -c japanese
lunch pick -c jap -m "Mee Pok" --json
lunch pick -m Laksa -m "Chicken Rice" --seed 42 -q
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := cliEnv()
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			p := pick.Pick{
				Service:    e.Service,
				Categories: po.Categories,
				Meals:      po.Meals,
				Seed:       po.Seed,
				Quiet:      po.Quiet,
				JSON:       oo.JSON,
				Out:        cmd.OutOrStdout(),
			}
			return oo.HandleError(p.Do(cmd.Context()))
		},
	}
	options.AddPickArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletions)

	topLevel.AddCommand(cmd)
}
