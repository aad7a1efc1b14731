package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/logging"
	"github.com/branyzp/whatsforlunch/pkg/store"
)

// env is what every verb needs: settings, a preset-backed service and a
// close func for the log file.
type env struct {
	Settings *store.Settings
	Service  *app.Service
	Close    func() error
}

// loadEnv reads config, applies log flag overrides and opens the preset
// store. Logs go to logFallback unless a log file is configured.
func loadEnv(logFallback io.Writer) (*env, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if logOpts.Level != "" {
		settings.LogLevel = logOpts.Level
	}
	if logOpts.File != "" {
		settings.LogFile = logOpts.File
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:    settings.LogLevel,
		File:     settings.LogFile,
		Fallback: logFallback,
	})
	if err != nil {
		return nil, err
	}

	presets, err := store.Load(settings)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	log.Debug("config loaded", slog.String("path", settings.Path), slog.Bool("guard_categories", settings.GuardCategories), slog.Bool("reset_clears_all", settings.ResetClearsAll))
	return &env{
		Settings: settings,
		Service: &app.Service{
			Presets: presets,
			Policy:  settings.Policy(),
			Log:     log,
		},
		Close: closeLog,
	}, nil
}

// cliEnv logs to stderr so stdout stays clean for --json.
func cliEnv() (*env, error) {
	return loadEnv(os.Stderr)
}
