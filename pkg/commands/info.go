package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where presets are stored.",
		Example: `
lunch info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := cliEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			s := info.Info{
				Settings: e.Settings,
				Service:  e.Service,
				Out:      cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
