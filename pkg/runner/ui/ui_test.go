package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/branyzp/whatsforlunch/pkg/app"
)

func TestUIRequiresTerminal(t *testing.T) {
	called := false
	u := &UI{
		IsTerminal: func() bool { return false },
		Run: func(context.Context, *app.Service) error {
			called = true
			return nil
		},
	}
	if err := u.Do(context.Background()); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if called {
		t.Fatal("program should not start")
	}
}

func TestUIRunsProgram(t *testing.T) {
	svc := &app.Service{}
	var got *app.Service
	u := &UI{
		Service:    svc,
		IsTerminal: func() bool { return true },
		Run: func(_ context.Context, s *app.Service) error {
			got = s
			return nil
		},
	}
	if err := u.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != svc {
		t.Fatal("service not passed to program")
	}
}
