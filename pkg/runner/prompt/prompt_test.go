package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/picker"
)

// script answers with canned values in order, then quits.
type script struct {
	selects []string
	texts   []string
}

func (s *script) Select(_ string, items []string) (int, error) {
	if len(s.selects) == 0 {
		return 0, ErrQuit
	}
	want := s.selects[0]
	s.selects = s.selects[1:]
	for i, item := range items {
		if item == want {
			return i, nil
		}
	}
	return 0, errors.New("no such item " + want)
}

func (s *script) Text(string) (string, error) {
	if len(s.texts) == 0 {
		return "", ErrQuit
	}
	t := s.texts[0]
	s.texts = s.texts[1:]
	return t, nil
}

func init() {
	color.NoColor = true
}

func TestPromptLoop(t *testing.T) {
	var buf bytes.Buffer
	p := &Prompt{
		Service: &app.Service{Policy: picker.DefaultPolicy()},
		Asker: &script{
			selects: []string{"Add Japanese", "Add Japanese", itemType, itemRandomize, itemQuit},
			texts:   []string{"Mee Pok"},
		},
		Out: &buf,
	}
	require.NoError(t, p.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Japanese is already in the pool")
	assert.Contains(t, out, "Mee Pok")
	assert.Contains(t, out, "Today's lunch:")
}

func TestPromptRandomizeEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := &Prompt{
		Service: &app.Service{Policy: picker.DefaultPolicy()},
		Asker:   &script{selects: []string{itemRandomize, itemReset}},
		Out:     &buf,
	}
	require.NoError(t, p.Do(context.Background()))
	assert.Contains(t, buf.String(), "Nothing to pick from yet.")
	assert.Contains(t, buf.String(), "none")
}

func TestPromptPropagatesErrors(t *testing.T) {
	p := &Prompt{
		Service: &app.Service{Policy: picker.DefaultPolicy()},
		Asker:   &script{selects: []string{"Add Thai"}},
		Out:     &bytes.Buffer{},
	}
	assert.Error(t, p.Do(context.Background()))
}

func TestQuitOn(t *testing.T) {
	assert.ErrorIs(t, quitOn(promptui.ErrInterrupt), ErrQuit)
	assert.ErrorIs(t, quitOn(promptui.ErrEOF), ErrQuit)
	assert.NoError(t, quitOn(nil))
}
