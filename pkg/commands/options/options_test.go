package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestPickArgs(t *testing.T) {
	o := &PickOptions{}
	cmd := &cobra.Command{Use: "pick"}
	AddPickArgs(cmd, o)

	if err := cmd.ParseFlags([]string{"-c", "hawker", "--category", "jap", "-m", "Mee Pok", "-m", "Laksa, extra chilli"}); err != nil {
		t.Fatal(err)
	}
	if len(o.Categories) != 2 || o.Categories[1] != "jap" {
		t.Fatalf("categories = %v", o.Categories)
	}
	if len(o.Meals) != 2 || o.Meals[1] != "Laksa, extra chilli" {
		t.Fatalf("meals = %v", o.Meals)
	}
	if o.Seed != nil {
		t.Fatal("seed should stay nil when unset")
	}
}

func TestSeedFlag(t *testing.T) {
	o := &PickOptions{}
	cmd := &cobra.Command{Use: "pick"}
	AddPickArgs(cmd, o)

	if err := cmd.ParseFlags([]string{"--seed", "42"}); err != nil {
		t.Fatal(err)
	}
	if o.Seed == nil || *o.Seed != 42 {
		t.Fatalf("seed = %v", o.Seed)
	}
	if got := cmd.Flags().Lookup("seed").Value.String(); got != "42" {
		t.Fatalf("String() = %q", got)
	}

	if err := cmd.ParseFlags([]string{"--seed", "-1"}); err == nil {
		t.Fatal("expected error for negative seed")
	}
}

func TestHandleError(t *testing.T) {
	err := errors.New("boom")

	o := &OutputOptions{}
	if got := o.HandleError(err); got != err {
		t.Fatalf("expected error passthrough, got %v", got)
	}

	var buf bytes.Buffer
	o.JSON = true
	o.Out = &buf
	if got := o.HandleError(err); got != nil {
		t.Fatalf("expected JSON mode to swallow error, got %v", got)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
