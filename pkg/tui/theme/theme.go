package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header    HeaderTheme
	Panel     PanelTheme
	Selection SelectionTheme
	Footer    FooterTheme
}

// HeaderTheme styles the title and category buttons.
type HeaderTheme struct {
	Title    lipgloss.Style
	Hotkey   lipgloss.Style
	Category lipgloss.Style
	Preset   lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Number lipgloss.Style
	Empty  lipgloss.Style
}

// SelectionTheme styles the drawn meal.
type SelectionTheme struct {
	Frame lipgloss.Style
	Label lipgloss.Style
	Meal  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Input  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
			Hotkey:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Category: lipgloss.NewStyle(),
			Preset:   lipgloss.NewStyle().Italic(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Number: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Selection: SelectionTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(accent).
				Padding(0, 2),
			Label: lipgloss.NewStyle().Foreground(muted),
			Meal:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted).Italic(true),
			Input:  lipgloss.NewStyle().Foreground(accent),
		},
	}
}
