package commands

import (
	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/runner/prompt"
)

func addPrompt(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "pick lunch through a menu of prompts",
		Example: `
lunch prompt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := cliEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			p := prompt.Prompt{Service: e.Service, Out: cmd.OutOrStdout()}
			return p.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
