package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/store"
)

type Info struct {
	Settings *store.Settings
	Service  *app.Service
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("LUNCH_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "LUNCH_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "LUNCH_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Settings.BasePath())
	_, _ = fmt.Fprintln(out, "Config.guard_categories:", n.Settings.GuardCategories)
	_, _ = fmt.Fprintln(out, "Config.reset_clears_all:", n.Settings.ResetClearsAll)

	if n.Service == nil {
		return fmt.Errorf("failed to create preset store")
	}

	_, _ = fmt.Fprintln(out, "Presets:")
	presets, err := n.Service.ListPresets(ctx)
	if err != nil {
		return err
	}
	for _, p := range presets {
		_, _ = fmt.Fprintf(out, "  %s (%d meals)\n", p.Key, len(p.Meals))
	}
	if len(presets) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no presets")
	}
	return nil
}
