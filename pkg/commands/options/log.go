package options

import (
	"github.com/spf13/cobra"
)

// LogOptions override the log settings from the config file.
type LogOptions struct {
	Level string
	File  string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level: debug, info, warn or error. Overrides log_level.")
	cmd.PersistentFlags().StringVar(&o.File, "log-file", "",
		"Append logs to this file. Overrides log_file.")
}
