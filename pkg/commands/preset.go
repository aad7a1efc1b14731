package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/commands/options"
	"github.com/branyzp/whatsforlunch/pkg/runner/preset"
)

func addPreset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "manage saved meal categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPresetAdd(cmd)
	addPresetRemove(cmd)
	addPresetList(cmd)

	topLevel.AddCommand(cmd)
}

func addPresetAdd(parent *cobra.Command) {
	pro := &options.PresetOptions{}
	cmd := &cobra.Command{
		Use:   "add KEY MEAL...",
		Short: "save a category of meals",
		Example: `
lunch preset add thai "Pad Thai" "Green Curry" "Tom Yum"
lunch preset add office-canteen --label "Office Canteen" "Nasi Lemak" "Mee Rebus"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := cliEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			a := preset.Add{
				Service: e.Service,
				Key:     args[0],
				Label:   pro.Label,
				Meals:   args[1:],
				Out:     cmd.OutOrStdout(),
			}
			return a.Do(cmd.Context())
		},
	}
	options.AddPresetArgs(cmd, pro)

	parent.AddCommand(cmd)
}

func addPresetRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm KEY",
		Aliases: []string{"remove", "delete"},
		Short:   "delete a saved category",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return presetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := cliEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			r := preset.Remove{Service: e.Service, Key: args[0], Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

func addPresetList(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list saved categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := cliEnv()
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			l := preset.List{Service: e.Service, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}
