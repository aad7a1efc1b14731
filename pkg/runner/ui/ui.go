package ui

import (
	"context"
	"errors"

	"github.com/branyzp/whatsforlunch/pkg/app"
	tui "github.com/branyzp/whatsforlunch/pkg/tui/app"
)

// ErrNotTerminal is returned when the full-screen UI cannot take over the
// terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, try `lunch prompt` or `lunch pick`")

type UI struct {
	Service *app.Service
	// IsTerminal defaults to checking stdout.
	IsTerminal func() bool
	// Run defaults to the Bubble Tea program.
	Run func(ctx context.Context, svc *app.Service) error
}

func (u *UI) Do(ctx context.Context) error {
	isTerm := u.IsTerminal
	if isTerm == nil {
		isTerm = stdoutIsTerminal
	}
	if !isTerm() {
		return ErrNotTerminal
	}
	run := u.Run
	if run == nil {
		run = tui.Run
	}
	return run(ctx, u.Service)
}
