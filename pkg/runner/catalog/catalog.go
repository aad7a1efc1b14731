// Package catalog provides the CLI listing of meal categories.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/branyzp/whatsforlunch/pkg/app"
	cat "github.com/branyzp/whatsforlunch/pkg/catalog"
)

// Catalog prints every category a picker can add.
type Catalog struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

// Do renders the catalog as a table, or as JSON.
func (c *Catalog) Do(ctx context.Context) error {
	if c.Service == nil {
		c.Service = &app.Service{}
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}

	catalog, err := c.Service.Catalog(ctx)
	if err != nil {
		return err
	}
	categories := catalog.Categories()

	if c.JSON {
		b, err := json.MarshalIndent(categories, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	_, _ = fmt.Fprintln(out, Table(categories))
	return nil
}

// Table lays categories out as numbered rows. Presets are marked with "*".
func Table(categories []cat.Category) *uitable.Table {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("  #"), bold.Sprint("Category"), bold.Sprint("Key"), bold.Sprint("Meals"))
	for i, c := range categories {
		label := c.Label
		if c.Preset {
			label += faint.Sprint(" *")
		}
		tbl.AddRow(fmt.Sprintf("%d", i+1), label, faint.Sprint(c.Key), strings.Join(c.Meals, ", "))
	}
	tbl.RightAlign(0)
	return tbl
}
