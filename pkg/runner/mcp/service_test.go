package mcp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/catalog"
	"github.com/branyzp/whatsforlunch/pkg/picker"
	"github.com/branyzp/whatsforlunch/pkg/store"
)

func firstIndex() picker.Option {
	return picker.WithSource(picker.SourceFunc(func(int) int { return 0 }))
}

func TestServiceAddCategoryAndRandomize(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, firstIndex())

	res, err := svc.AddCategory(ctx, "hawker")
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if !res.Applied || res.State.Count != 6 {
		t.Fatalf("expected 6 hawker meals, got %+v", res)
	}

	res, err = svc.AddCategory(ctx, "Hawker")
	if err != nil {
		t.Fatalf("AddCategory again: %v", err)
	}
	if res.Applied || res.Reason == "" {
		t.Fatalf("expected duplicate category to be skipped, got %+v", res)
	}

	drawn := svc.Randomize(ctx)
	if !drawn.Applied {
		t.Fatalf("expected randomize to apply")
	}
	if drawn.State.Selection != "Chicken Rice" || !drawn.State.Celebrating {
		t.Fatalf("unexpected selection %+v", drawn.State)
	}
	if drawn.State.Phase != picker.Selected.String() {
		t.Fatalf("phase = %q", drawn.State.Phase)
	}
}

func TestServiceAddMeal(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	res := svc.AddMeal(ctx, " Mee Pok ")
	if !res.Applied {
		t.Fatalf("expected meal to be added, got %+v", res)
	}
	if got := res.State.Pool; len(got) != 1 || got[0] != " Mee Pok " {
		t.Fatalf("pool = %q", got)
	}
	if res.State.Entry != "" {
		t.Fatalf("entry should be cleared, got %q", res.State.Entry)
	}
}

func TestServiceAddMealKeepsBlankText(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	for _, meal := range []string{"", "   "} {
		if res := svc.AddMeal(ctx, meal); !res.Applied {
			t.Fatalf("%q: expected meal to be added, got %+v", meal, res)
		}
	}
	if got := svc.State().Pool; len(got) != 2 || got[0] != "" || got[1] != "   " {
		t.Fatalf("pool = %q", got)
	}
}

func TestServiceRandomizeEmpty(t *testing.T) {
	svc := NewService(nil)
	res := svc.Randomize(context.Background())
	if res.Applied || res.Reason == "" {
		t.Fatalf("expected no-op on empty pool, got %+v", res)
	}
	if res.State.Celebrating {
		t.Fatalf("celebrating on empty pool")
	}
}

func TestServiceReset(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, firstIndex())
	if _, err := svc.AddCategory(ctx, "western"); err != nil {
		t.Fatal(err)
	}
	svc.Randomize(ctx)

	res := svc.Reset(ctx)
	if res.State.Count != 0 || res.State.Celebrating || res.State.Selection != "" {
		t.Fatalf("reset left state behind: %+v", res.State)
	}
	if res.State.Pool == nil {
		t.Fatalf("pool should be empty, not nil")
	}
}

func TestServiceUnknownCategory(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.AddCategory(context.Background(), "thai")
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestServiceUsesPresets(t *testing.T) {
	ctx := context.Background()
	presets, err := store.Load(&store.Settings{Path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	a := &app.Service{Presets: presets, Policy: picker.DefaultPolicy()}
	if err := a.SavePreset(ctx, catalog.Preset{Key: "thai", Meals: []string{"Pad Thai", "Tom Yum"}}); err != nil {
		t.Fatal(err)
	}

	svc := NewService(a)
	cats, err := svc.Catalog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 5 || cats[4].Key != "thai" {
		t.Fatalf("expected thai preset last, got %+v", cats)
	}

	res, err := svc.AddCategory(ctx, "thai")
	if err != nil {
		t.Fatal(err)
	}
	if res.State.Count != 2 {
		t.Fatalf("pool = %v", res.State.Pool)
	}
}

func TestServiceSerializesCalls(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddMeal(ctx, "Laksa")
			svc.Randomize(ctx)
		}()
	}
	wg.Wait()

	if got := svc.State().Count; got != 50 {
		t.Fatalf("expected 50 meals, got %d", got)
	}
}

func TestNewServer(t *testing.T) {
	if NewServer("lunch", "test", NewService(nil)) == nil {
		t.Fatal("expected server")
	}
}

func TestServiceSessionID(t *testing.T) {
	a, b := NewService(nil), NewService(nil)
	if a.State().Session == "" {
		t.Fatal("expected a session id")
	}
	if a.State().Session == b.State().Session {
		t.Fatal("sessions should differ")
	}
	if a.Reset(context.Background()).State.Session != a.State().Session {
		t.Fatal("session id should be stable")
	}
}

func TestAddMealToolPoolsEmptyMeal(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)
	tool := NewServer("lunch", "test", svc).GetTool("add_meal")
	if tool == nil {
		t.Fatal("add_meal not registered")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = "add_meal"
	req.Params.Arguments = map[string]any{"meal": ""}
	res, err := tool.Handler(ctx, req)
	if err != nil {
		t.Fatalf("add_meal: %v", err)
	}
	if res.IsError {
		t.Fatalf("add_meal returned an error result: %+v", res.Content)
	}
	if got := svc.State().Pool; len(got) != 1 || got[0] != "" {
		t.Fatalf("pool = %q", got)
	}
}
