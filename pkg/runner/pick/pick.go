// Package pick builds a meal pool from command-line input and draws once.
package pick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/picker"
	"github.com/branyzp/whatsforlunch/pkg/printers"
)

// Pick adds the given categories, then the custom meals, then randomizes.
type Pick struct {
	Service    *app.Service
	Categories []string
	Meals      []string
	// Seed makes the draw reproducible when non-nil.
	Seed  *uint64
	JSON  bool
	Quiet bool
	Out   io.Writer
}

// Result is the JSON shape printed with --json.
type Result struct {
	picker.State
	Picked  bool     `json:"picked"`
	Skipped []string `json:"skipped,omitempty"`
}

// Do runs the pick. An empty pool is reported, not treated as an error.
func (p *Pick) Do(ctx context.Context) error {
	if p.Service == nil {
		p.Service = &app.Service{Policy: picker.DefaultPolicy()}
	}
	out := p.Out
	if out == nil {
		out = color.Output
	}

	catalog, err := p.Service.Catalog(ctx)
	if err != nil {
		return err
	}

	var opts []picker.Option
	if p.Seed != nil {
		opts = append(opts, picker.WithSource(picker.NewSeededSource(*p.Seed)))
	}
	pk := p.Service.NewPicker(opts...)

	var skipped []string
	for _, name := range p.Categories {
		c, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		if !pk.AddCategory(c) {
			skipped = append(skipped, c.Key)
		}
	}
	for _, meal := range p.Meals {
		pk.SetEntry(meal)
		pk.AddCustomMeal()
	}

	_, ok := pk.Randomize()
	state := pk.Snapshot()

	if p.JSON {
		b, err := json.MarshalIndent(Result{State: state, Picked: ok, Skipped: skipped}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := &printers.PrettyPrint{Out: out}
	for _, key := range skipped {
		_, _ = color.New(color.Faint).Fprintf(out, "%s already in the pool, skipped\n", key)
	}
	if !p.Quiet {
		pp.State(state)
		if !ok {
			_, _ = fmt.Fprintln(out, "Nothing to pick from. Add a category with --category or a meal with --meal.")
		}
		return nil
	}
	if ok {
		_, _ = fmt.Fprintln(out, state.Selection)
	}
	return nil
}
