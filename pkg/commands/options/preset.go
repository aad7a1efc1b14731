package options

import (
	"github.com/spf13/cobra"
)

// PresetOptions
type PresetOptions struct {
	Label string
}

func AddPresetArgs(cmd *cobra.Command, o *PresetOptions) {
	cmd.Flags().StringVarP(&o.Label, "label", "l", "",
		"Display label for the preset. Defaults to the key.")
}
