package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/commands/options"
	"github.com/branyzp/whatsforlunch/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"categories"},
		Short:   "list the meal categories",
		Example: `
lunch catalog
lunch catalog --json
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
			c := catalog.Catalog{Service: e.Service, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
