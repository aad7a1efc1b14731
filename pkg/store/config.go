package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/branyzp/whatsforlunch/pkg/picker"
)

// Config locates the on-disk preset store.
type Config interface {
	BasePath() string
}

// Settings is the resolved configuration for a lunch invocation.
type Settings struct {
	Path            string
	GuardCategories bool
	ResetClearsAll  bool
	LogLevel        string
	LogFile         string
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// Policy returns the picker policy selected by the settings.
func (s *Settings) Policy() picker.Policy {
	return picker.Policy{
		GuardCategories: s.GuardCategories,
		ResetClearsAll:  s.ResetClearsAll,
	}
}

// LoadConfig reads `.lunch.{yaml,json,toml}` from $LUNCH_CONFIG_PATH, the
// working directory or $HOME, then applies LUNCH_* environment overrides.
// A missing config file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.whatsforlunch")
	v.SetDefault("guard_categories", true)
	v.SetDefault("reset_clears_all", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetConfigName(".lunch")
	v.SetEnvPrefix("LUNCH")
	v.AutomaticEnv()

	if override := os.Getenv("LUNCH_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	s := &Settings{
		Path:            v.GetString("path"),
		GuardCategories: v.GetBool("guard_categories"),
		ResetClearsAll:  v.GetBool("reset_clears_all"),
		LogLevel:        v.GetString("log_level"),
		LogFile:         v.GetString("log_file"),
	}

	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}
