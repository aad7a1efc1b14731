// Package preset manages user-defined meal categories from the command line.
package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/samber/lo"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/catalog"
)

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// Add stores a preset category. Meals are trimmed; blanks are dropped.
type Add struct {
	Service *app.Service
	Key     string
	Label   string
	Meals   []string
	Out     io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	meals := lo.FilterMap(a.Meals, func(m string, _ int) (string, bool) {
		m = strings.TrimSpace(m)
		return m, m != ""
	})
	p := catalog.Preset{
		Key:   strings.TrimSpace(a.Key),
		Label: strings.TrimSpace(a.Label),
		Meals: meals,
	}
	if err := a.Service.SavePreset(ctx, p); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(output(a.Out), "saved preset %s with %d meals\n", p.Key, len(p.Meals))
	return nil
}

// Remove deletes a stored preset.
type Remove struct {
	Service *app.Service
	Key     string
	Out     io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	key := strings.TrimSpace(r.Key)
	if err := r.Service.DeletePreset(ctx, key); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(output(r.Out), "removed preset %s\n", key)
	return nil
}

// List prints stored presets.
type List struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (l *List) Do(ctx context.Context) error {
	presets, err := l.Service.ListPresets(ctx)
	if err != nil {
		return err
	}
	out := output(l.Out)

	if l.JSON {
		b, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	if len(presets) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, "no presets")
		return nil
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow("KEY", "LABEL", "MEALS")
	for _, p := range presets {
		tbl.AddRow(p.Key, p.Category().Label, strings.Join(p.Meals, ", "))
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
