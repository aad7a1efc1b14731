package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the meal picker in the terminal",
		Example: `
lunch ui
lunch ui --log-file /tmp/lunch.log --log-level debug
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// The screen belongs to the UI; logs only go to a file.
			e, err := loadEnv(nil)
			if err != nil {
				return err
			}
			defer e.Close()
			i := ui.UI{Service: e.Service}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
