// Package prompt drives the picker through a line-oriented menu loop for
// terminals where the full-screen UI is not wanted.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/printers"
)

// ErrQuit ends the loop without error when returned by an Asker.
var ErrQuit = errors.New("prompt: quit")

// Asker collects one answer at a time.
type Asker interface {
	Select(label string, items []string) (int, error)
	Text(label string) (string, error)
}

// Prompt is the menu loop runner.
type Prompt struct {
	Service *app.Service
	Asker   Asker
	Out     io.Writer
}

const (
	itemType      = "Type a meal"
	itemRandomize = "Randomize"
	itemReset     = "Reset"
	itemQuit      = "Quit"
)

func (p *Prompt) Do(ctx context.Context) error {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	asker := p.Asker
	if asker == nil {
		asker = &terminal{in: io.NopCloser(os.Stdin), out: nopWriteCloser{os.Stdout}}
	}

	cat, err := p.Service.Catalog(ctx)
	if err != nil {
		return err
	}
	pk := p.Service.NewPicker()
	pp := &printers.PrettyPrint{Out: out}

	categories := cat.Categories()
	items := make([]string, 0, len(categories)+4)
	for _, c := range categories {
		items = append(items, "Add "+c.Label)
	}
	items = append(items, itemType, itemRandomize, itemReset, itemQuit)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		i, err := asker.Select("What's for lunch", items)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case i < len(categories):
			c := categories[i]
			if !pk.AddCategory(c) {
				_, _ = color.New(color.Faint).Fprintf(out, "%s is already in the pool\n", c.Label)
			}
			pp.State(pk.Snapshot())
		default:
			switch items[i] {
			case itemType:
				text, err := asker.Text("Meal")
				if errors.Is(err, ErrQuit) {
					continue
				}
				if err != nil {
					return err
				}
				pk.SetEntry(text)
				pk.AddCustomMeal()
				pp.State(pk.Snapshot())
			case itemRandomize:
				if _, ok := pk.Randomize(); !ok {
					_, _ = fmt.Fprintln(out, "Nothing to pick from yet.")
					continue
				}
				pp.Selection(pk.Snapshot().Selection)
			case itemReset:
				pk.Reset()
				pp.State(pk.Snapshot())
			case itemQuit:
				return nil
			}
		}
	}
}

// terminal asks through promptui.
type terminal struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (t *terminal) Select(label string, items []string) (int, error) {
	s := promptui.Select{
		HideHelp: true,
		Label:    label,
		Items:    items,
		Size:     len(items),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . | bold }}?",
			Active:   "➜  {{ . | cyan | bold }}",
			Inactive: "   {{ . }}",
			Selected: "{{ . | faint }}",
		},
		Stdin:  t.in,
		Stdout: t.out,
	}
	i, _, err := s.Run()
	return i, quitOn(err)
}

func (t *terminal) Text(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Success: "{{ . | bold }}: ",
		},
		Stdin:  t.in,
		Stdout: t.out,
	}
	text, err := p.Run()
	return text, quitOn(err)
}

func quitOn(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrQuit
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
