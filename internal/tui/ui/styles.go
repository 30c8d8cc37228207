package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style
	Muted     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Drink grid
	Category     lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style
	CellUnits    lipgloss.Style

	// Time popup
	Option         lipgloss.Style
	OptionFocused  lipgloss.Style
	OptionMarked   lipgloss.Style
	OptionDisabled lipgloss.Style

	// Entry list
	EntryTime  lipgloss.Style
	EntryName  lipgloss.Style
	EntryUnits lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog and toast
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Toast       lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates Styles from the current bubbletint theme:
// purple for titles and the selection, cyan for keys and times, bright
// purple for units, bright black for anything muted.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		Category: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		Cell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		CellSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Foreground(primary).
			Bold(true).
			Padding(0, 1),
		CellUnits: lipgloss.NewStyle().
			Foreground(accent),

		Option: lipgloss.NewStyle().
			Padding(0, 1),
		OptionFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(bg).
			Background(primary).
			Bold(true),
		OptionMarked: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(success).
			Bold(true).
			Underline(true),
		OptionDisabled: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(muted).
			Strikethrough(true),

		EntryTime: lipgloss.NewStyle().
			Foreground(secondary),
		EntryName: lipgloss.NewStyle().
			Foreground(fg),
		EntryUnits: lipgloss.NewStyle().
			Foreground(accent),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(18),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(success).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
