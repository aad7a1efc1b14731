package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/branyzp/whatsforlunch/pkg/picker"
)

// PrettyPrint renders picker state for line-oriented output.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " meal")
	default:
		_, _ = c.Fprintln(pp.out(), " meals")
	}
}

// Pool lists the meals one per line, numbered from 1.
func (pp *PrettyPrint) Pool(meals ...string) {
	if len(meals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	n := color.New(color.Faint)
	for i, m := range meals {
		_, _ = n.Fprintf(pp.out(), "%3d  ", i+1)
		if m == "" {
			_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "(blank)")
			continue
		}
		_, _ = fmt.Fprintln(pp.out(), m)
	}
	pp.NewLine()
}

// Selection prints the drawn meal as a banner.
func (pp *PrettyPrint) Selection(meal string) {
	o := termenv.NewOutput(pp.out())
	banner := o.String(fmt.Sprintf(" %s ", meal)).
		Bold().
		Foreground(o.Color("0")).
		Background(o.Color("212"))
	_, _ = fmt.Fprintf(pp.out(), "Today's lunch: %s\n", banner)
}

// State prints the pool followed by the selection, if any.
func (pp *PrettyPrint) State(s picker.State) {
	pp.TitleWithCount("Meal Pool", len(s.Pool))
	pp.Pool(s.Pool...)
	if s.HasSelection() {
		pp.Selection(s.Selection)
	}
}
