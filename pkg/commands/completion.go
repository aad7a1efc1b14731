package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(lunch completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(lunch completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func completionService() *app.Service {
	p, err := store.Load(nil)
	if err != nil {
		return &app.Service{}
	}
	return &app.Service{Presets: p}
}

func categoryCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := completionService().Catalog(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, key := range cat.Keys() {
		if strings.HasPrefix(strings.ToLower(key), strings.ToLower(toComplete)) {
			out = append(out, key)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func presetCompletions(toComplete string) []string {
	presets, err := completionService().ListPresets(context.Background())
	if err != nil {
		return nil
	}
	var out []string
	for _, p := range presets {
		if strings.HasPrefix(p.Key, toComplete) {
			out = append(out, p.Key)
		}
	}
	return out
}
