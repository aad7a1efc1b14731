// Package confetti renders falling particles while a meal is being celebrated.
package confetti

import (
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultCount = 48
	frameRate    = time.Second / 20
	gravity      = 0.08
)

var glyphs = []rune{'*', '+', '•', '◆', '▪', '~'}

// TickMsg advances the animation for the model with the matching id.
type TickMsg struct {
	id  int64
	gen int
}

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	style  lipgloss.Style
}

// Model is a confetti animation sized to the terminal.
type Model struct {
	id        int64
	gen       int
	width     int
	height    int
	running   bool
	rng       *rand.Rand
	count     int
	particles []particle
	palette   []lipgloss.Style
}

var lastID atomic.Int64

// New returns a stopped confetti model. seed fixes the particle layout.
func New(seed uint64) *Model {
	colors := colorful.FastHappyPalette(8)
	palette := make([]lipgloss.Style, 0, len(colors))
	for _, c := range colors {
		palette = append(palette, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())))
	}
	return &Model{
		id:      lastID.Add(1),
		rng:     rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
		count:   defaultCount,
		palette: palette,
	}
}

// SetSize sets the drawing area.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
}

// Running reports whether the animation is playing.
func (m *Model) Running() bool { return m.running }

// Start launches a fresh burst and returns the first tick.
func (m *Model) Start() tea.Cmd {
	m.gen++
	m.running = true
	m.particles = m.particles[:0]
	for i := 0; i < m.count; i++ {
		m.particles = append(m.particles, m.spawn(true))
	}
	return m.tick()
}

// Stop clears the particles. Pending ticks are ignored.
func (m *Model) Stop() {
	m.gen++
	m.running = false
	m.particles = nil
}

// Update advances one frame for matching ticks.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	t, ok := msg.(TickMsg)
	if !ok || t.id != m.id || t.gen != m.gen || !m.running {
		return nil
	}
	for i := range m.particles {
		p := &m.particles[i]
		p.vy += gravity
		p.x += p.vx
		p.y += p.vy
		if p.y >= float64(m.height) || p.x < 0 || p.x >= float64(m.width) {
			*p = m.spawn(false)
		}
	}
	return m.tick()
}

// View draws the particles over a blank area of the configured size.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	grid := make([][]string, m.height)
	for y := range grid {
		grid[y] = make([]string, m.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	if m.running {
		for _, p := range m.particles {
			x, y := int(p.x), int(p.y)
			if x < 0 || y < 0 || x >= m.width || y >= m.height {
				continue
			}
			grid[y][x] = p.style.Render(string(p.glyph))
		}
	}
	lines := make([]string, m.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(frameRate, func(time.Time) tea.Msg {
		return TickMsg{id: id, gen: gen}
	})
}

func (m *Model) spawn(scatter bool) particle {
	p := particle{
		vx:    (m.rng.Float64() - 0.5) * 0.6,
		vy:    m.rng.Float64() * 0.3,
		glyph: glyphs[m.rng.IntN(len(glyphs))],
	}
	if len(m.palette) > 0 {
		p.style = m.palette[m.rng.IntN(len(m.palette))]
	}
	if m.width > 0 {
		p.x = m.rng.Float64() * float64(m.width)
	}
	if scatter && m.height > 0 {
		p.y = m.rng.Float64() * float64(m.height) / 2
	}
	return p
}
