// Package app is the full-screen meal picker.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	lunch "github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/catalog"
	"github.com/branyzp/whatsforlunch/pkg/picker"
	"github.com/branyzp/whatsforlunch/pkg/store"
	"github.com/branyzp/whatsforlunch/pkg/tui/components/confetti"
	"github.com/branyzp/whatsforlunch/pkg/tui/components/help"
	"github.com/branyzp/whatsforlunch/pkg/tui/theme"
)

const (
	inputPrefix    = "Add a meal: "
	confettiHeight = 5
	maxHotkeys     = 9
	helpText       = "1-9 add category • / type a meal • r randomize • x reset • ? help • q quit"
	typingHelpText = "enter add to pool • esc stop typing"
)

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the Bubble Tea root model.
type Model struct {
	ctx   context.Context
	svc   *lunch.Service
	theme theme.Theme

	catalog  *catalog.Catalog
	picker   *picker.Picker
	input    textinput.Model
	typing   bool
	confetti *confetti.Model
	help     *help.Model
	showHelp bool

	width  int
	height int
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the model. The built-in catalog is usable immediately; presets
// arrive once Init's load completes.
func New(ctx context.Context, svc *lunch.Service, opts ...picker.Option) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if svc == nil {
		svc = &lunch.Service{Policy: picker.DefaultPolicy()}
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "press / to type"
	input.VirtualCursor = false

	return &Model{
		ctx:      ctx,
		svc:      svc,
		theme:    theme.Default(),
		catalog:  catalog.Default(),
		picker:   svc.NewPicker(opts...),
		input:    input,
		confetti: confetti.New(0),
		help:     help.New(80, 24),
		width:    80,
		height:   24,
	}
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, svc *lunch.Service) error {
	m := New(ctx, svc)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// State returns a copy of the picker state.
func (m *Model) State() picker.State {
	return m.picker.Snapshot()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCatalog()}
	if m.svc.Presets != nil {
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.confetti.SetSize(m.width, confettiHeight)
		m.help.SetSize(m.width, m.height)
	case catalogLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Presets unavailable: %v", msg.err)
			break
		}
		m.catalog = msg.catalog
	case watchStartedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Not watching presets: %v", msg.err)
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.status = "Presets changed, reloading"
		cmds = append(cmds, m.loadCatalog())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case confetti.TickMsg:
		if cmd := m.confetti.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.stopWatch()
		return tea.Quit
	}

	if m.showHelp {
		switch key {
		case "?", "esc", "q":
			m.showHelp = false
			return nil
		}
		return m.help.Update(msg)
	}

	if m.typing {
		switch key {
		case "enter":
			meal := m.picker.AddCustomMeal()
			m.input.Reset()
			m.status = fmt.Sprintf("Added %q", meal)
			return nil
		case "esc":
			m.typing = false
			m.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.picker.Snapshot().Entry {
			m.picker.SetEntry(v)
		}
		return cmd
	}

	switch key {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "?":
		m.showHelp = true
		return nil
	case "/", "i":
		m.typing = true
		m.input.SetValue(m.picker.Snapshot().Entry)
		m.input.CursorEnd()
		return m.input.Focus()
	case "r", "space", " ":
		return m.randomize()
	case "x":
		m.picker.Reset()
		m.input.SetValue(m.picker.Snapshot().Entry)
		m.confetti.Stop()
		m.status = "Pool cleared"
		return nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.addCategory(int(key[0] - '1'))
	}
	return nil
}

func (m *Model) addCategory(i int) {
	c, ok := m.catalog.At(i)
	if !ok {
		return
	}
	if m.picker.AddCategory(c) {
		m.status = fmt.Sprintf("Added %s", c.Label)
	} else {
		m.status = fmt.Sprintf("%s is already in the pool", c.Label)
	}
}

func (m *Model) randomize() tea.Cmd {
	meal, ok := m.picker.Randomize()
	if !ok {
		m.status = "Add something to the pool first"
		return nil
	}
	m.status = fmt.Sprintf("Picked %s", meal)
	m.confetti.SetSize(m.width, confettiHeight)
	return m.confetti.Start()
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.showHelp {
		return m.help.View(), nil
	}
	st := m.picker.Snapshot()
	t := m.theme
	width := max(m.width, 20)

	var lines []string
	lines = append(lines, t.Header.Title.Render("What's for lunch?"), "")
	lines = append(lines, m.renderCategories(width)...)
	lines = append(lines, "")

	inputRow := len(lines)
	var inputView string
	if m.typing {
		inputView = m.input.View()
	} else if st.Entry != "" {
		inputView = st.Entry
	} else {
		inputView = t.Panel.Empty.Render(m.input.Placeholder)
	}
	lines = append(lines, t.Footer.Input.Render(inputPrefix)+inputView, "")

	lines = append(lines, strings.Split(m.renderPool(st, width), "\n")...)

	if st.HasSelection() {
		label := t.Selection.Label.Render("Today's lunch")
		meal := t.Selection.Meal.Render(clip(st.Selection, width-8))
		lines = append(lines, t.Selection.Frame.Render(label+"\n"+meal))
	}
	if st.Celebrating && m.confetti.Running() {
		lines = append(lines, m.confetti.View())
	}

	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, t.Footer.Status.Render(clip(m.status, width)))
	}
	help := helpText
	if m.typing {
		help = typingHelpText
	}
	lines = append(lines, t.Footer.Help.Render(clip(help, width)))

	var cursor *tea.Cursor
	if m.typing {
		if c := m.input.Cursor(); c != nil {
			cur := *c
			cur.X += lipgloss.Width(inputPrefix)
			cur.Y = inputRow
			cursor = &cur
		}
	}
	return strings.Join(lines, "\n"), cursor
}

func (m *Model) renderCategories(width int) []string {
	t := m.theme
	var rows []string
	var row []string
	used := 0
	for i, c := range m.catalog.Categories() {
		if i >= maxHotkeys {
			break
		}
		style := t.Header.Category
		if c.Preset {
			style = t.Header.Preset
		}
		button := t.Header.Hotkey.Render(fmt.Sprintf("[%d]", i+1)) + " " + style.Render(c.Label)
		w := lipgloss.Width(button) + 2
		if used > 0 && used+w > width {
			rows = append(rows, strings.Join(row, "  "))
			row, used = nil, 0
		}
		row = append(row, button)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, "  "))
	}
	return rows
}

func (m *Model) renderPool(st picker.State, width int) string {
	t := m.theme
	title := t.Panel.Title.Render(fmt.Sprintf("Meal Pool (%d)", len(st.Pool)))
	var body []string
	if len(st.Pool) == 0 {
		body = append(body, t.Panel.Empty.Render("empty"))
	}
	for i, meal := range st.Pool {
		name := meal
		if name == "" {
			name = t.Panel.Empty.Render("(blank)")
		} else {
			name = clip(name, width-12)
		}
		body = append(body, t.Panel.Number.Render(fmt.Sprintf("%3d ", i+1))+t.Panel.Body.Render(name))
	}
	return t.Panel.Frame.Render(title + "\n" + strings.Join(body, "\n"))
}

func (m *Model) loadCatalog() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		cat, err := svc.Catalog(ctx)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

func startWatchCmd(parent context.Context, svc *lunch.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func clip(s string, width int) string {
	if width < 4 {
		width = 4
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
