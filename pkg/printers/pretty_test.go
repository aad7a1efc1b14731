package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/branyzp/whatsforlunch/pkg/picker"
)

func TestStateListsPoolAndSelection(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.State(picker.State{Pool: []string{"Sushi", "", "Ramen"}, Selection: "Ramen", Celebrating: true})

	out := buf.String()
	for _, want := range []string{"Meal Pool - 3 meals", "  1  Sushi", "  2  (blank)", "  3  Ramen", "Today's lunch:", "Ramen"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStateEmptyPool(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.State(picker.State{})

	out := buf.String()
	if !strings.Contains(out, "Meal Pool - 0 meals") || !strings.Contains(out, "none") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Today's lunch") {
		t.Fatalf("no selection expected:\n%s", out)
	}
}
