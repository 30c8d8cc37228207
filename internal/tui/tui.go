// Package tui provides the Terminal User Interface for sip.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/sip/internal/diag"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/storage"
	"github.com/xolan/sip/internal/tui/ui"
	"github.com/xolan/sip/internal/tui/views"
	"github.com/xolan/sip/internal/undo"
)

// Tab represents a view tab
type Tab int

const (
	TabDrinks Tab = iota
	TabLog
	TabStats
)

var tabNames = []string{"Drinks", "Log", "Stats"}

// toast is the notice shown after a log or undo.
// A zero token means there is nothing left to undo.
type toast struct {
	id      int
	text    string
	isError bool
	entry   entry.Entry
	token   *undo.Token
}

// toastExpiredMsg closes the toast with the matching id
type toastExpiredMsg struct {
	id int
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	drinksView views.DrinksModel
	logView    views.LogModel
	statsView  views.StatsModel

	toast   *toast
	toastID int

	// changes fires when the log file is modified on disk
	changes <-chan struct{}

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabDrinks,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		drinksView:    views.NewDrinksModel(services, styles, keys),
		logView:       views.NewLogModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
	}
}

// WithChanges returns a copy of m that reloads its views whenever ch fires
func (m Model) WithChanges(ch <-chan struct{}) Model {
	m.changes = ch
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.drinksView.Init(),
		m.logView.Init(),
		waitForChange(m.changes),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A popup or form in the active view owns the keyboard
		modal := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && (!modal || msg.String() == "ctrl+c"):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !modal:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Undo) && !modal:
			return m, m.undo()

		case key.Matches(msg, m.keys.Back) && !modal && m.toast != nil:
			m.toast = nil
			return m, nil

		case key.Matches(msg, m.keys.NextTheme) && !modal:
			name := m.themeProvider.NextTheme()
			return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: name} }

		case key.Matches(msg, m.keys.NextTab) && !modal:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modal:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !modal:
			m.activeTab = TabDrinks
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !modal:
			m.activeTab = TabLog
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !modal:
			m.activeTab = TabStats
			return m, m.initCurrentView()
		}

		return m, m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 5 // tabs, toast and status bar
		m.drinksView.SetSize(m.width, contentHeight)
		m.logView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		cmd := m.broadcast(ui.ThemeChangedMsg{ThemeName: newTheme, Styles: m.styles})
		return m, tea.Batch(cmd, m.saveThemeConfig(newTheme))

	case ui.LoggedMsg:
		var expire tea.Cmd
		if msg.Err != nil {
			m.showToast(toast{text: fmt.Sprintf("Could not log drink: %v", msg.Err), isError: true})
		} else {
			tok := msg.Token
			m.showToast(toast{
				text:  fmt.Sprintf("Logged %s at %s", msg.Entry.Name, msg.Entry.OccurredAt.In(m.loc()).Format("15:04")),
				entry: msg.Entry,
				token: &tok,
			})
			expire = m.expireToast()
		}
		return m, tea.Batch(m.broadcast(msg), expire)

	case ui.UndoneMsg:
		switch {
		case errors.Is(msg.Err, undo.ErrExpired):
			m.showToast(toast{text: "Too late to undo", isError: true})
		case msg.Err != nil:
			m.showToast(toast{text: fmt.Sprintf("Could not undo: %v", msg.Err), isError: true})
		default:
			m.showToast(toast{text: fmt.Sprintf("Removed %s", msg.Entry.Name)})
		}
		return m, m.broadcast(msg)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case ui.StorageChangedMsg:
		return m, tea.Batch(m.broadcast(msg), waitForChange(m.changes))
	}

	return m, m.updateActive(msg)
}

// updateActive forwards msg to the active view only
func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabDrinks:
		m.drinksView, cmd = m.drinksView.Update(msg)
	case TabLog:
		m.logView, cmd = m.logView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return cmd
}

// broadcast forwards msg to every view
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds [3]tea.Cmd
	m.drinksView, cmds[0] = m.drinksView.Update(msg)
	m.logView, cmds[1] = m.logView.Update(msg)
	m.statsView, cmds[2] = m.statsView.Update(msg)
	return tea.Batch(cmds[:]...)
}

func (m *Model) showToast(t toast) {
	m.toastID++
	t.id = m.toastID
	m.toast = &t
}

// expireToast closes the current toast once its undo window has passed.
// Without a window the toast stays until the next action.
func (m Model) expireToast() tea.Cmd {
	window := m.services.Log.UndoWindow()
	if window <= 0 || m.toast == nil {
		return nil
	}
	id := m.toast.id
	return tea.Tick(window, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// undo removes the drink the toast refers to
func (m *Model) undo() tea.Cmd {
	if m.toast == nil || m.toast.token == nil {
		return nil
	}
	tok := *m.toast.token
	m.toast.token = nil
	services := m.services
	return func() tea.Msg {
		e, err := services.Log.Undo(tok)
		return ui.UndoneMsg{Entry: e, Err: err}
	}
}

// waitForChange blocks until ch fires. A nil or closed channel ends the loop.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ui.StorageChangedMsg{}
	}
}

func (m Model) loc() *time.Location {
	return m.services.Log.Calendar().Loc
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabDrinks:
		b.WriteString(m.drinksView.View())
	case TabLog:
		b.WriteString(m.logView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	}

	if m.toast != nil {
		b.WriteString("\n")
		b.WriteString(m.renderToast())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderToast() string {
	if m.toast.isError {
		return m.styles.Error.Render(m.toast.text)
	}
	text := m.toast.text
	if m.toast.token != nil {
		text += "  " + m.renderKeyHelp("u", m.undoHint(*m.toast.token))
	}
	return m.styles.Toast.Render(text)
}

// undoHint names the undo key's action and, with a window, the time left
func (m Model) undoHint(tok undo.Token) string {
	window := m.services.Log.UndoWindow()
	if window <= 0 {
		return "undo"
	}
	left := tok.Remaining(m.services.Log.Calendar().Now(), window)
	return fmt.Sprintf("undo (%s left)", left.Round(time.Second))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("↑↓←→", "move"))
		parts = append(parts, m.renderKeyHelp("Enter", "choose"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabDrinks:
			parts = append(parts, m.renderKeyHelp("Enter", "log now"))
			parts = append(parts, m.renderKeyHelp("o", "earlier"))
			parts = append(parts, m.renderKeyHelp("c", "custom"))
		case TabLog:
			parts = append(parts, m.renderKeyHelp("t", "today"))
			parts = append(parts, m.renderKeyHelp("w", "week"))
		case TabStats:
			parts = append(parts, m.renderKeyHelp("w", "week"))
			parts = append(parts, m.renderKeyHelp("m", "month"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode reports whether the active view has a popup or form open
func (m Model) isInputMode() bool {
	if m.activeTab == TabDrinks {
		return m.drinksView.IsInputMode()
	}
	return false
}

// initCurrentView reloads the view being switched to
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabDrinks:
		return m.drinksView.Init()
	case TabLog:
		return m.logView.Init()
	case TabStats:
		return m.statsView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		cfg := services.Config.Get()
		cfg.Theme = themeName
		_ = services.Config.Update(cfg)
		return nil
	}
}

// renderHelpOverlay renders the keyboard reference
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  u          Undo the last drink\n")
	help.WriteString("  T          Next theme (" + m.themeProvider.CurrentDisplayName() + ")\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabDrinks:
		help.WriteString(m.styles.StatLabel.Render("Drinks:"))
		help.WriteString("\n")
		help.WriteString("  arrows     Move around the grid\n")
		help.WriteString("  Enter      Log the drink now\n")
		help.WriteString("  o          Log it 15-60 minutes ago or at a time\n")
		help.WriteString("  c          Log a custom drink\n")
	case TabLog:
		help.WriteString(m.styles.StatLabel.Render("Log:"))
		help.WriteString("\n")
		help.WriteString("  t          Today's drinks\n")
		help.WriteString("  w          This week's drinks\n")
		help.WriteString("  r          Refresh\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  w          Weekly view\n")
		help.WriteString("  m          Monthly view\n")
		help.WriteString("  r          Refresh\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application and reloads it when the log changes on disk
func Run(services *service.Services) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := New(services)
	// Logging to stderr would corrupt the alt screen
	if ch, err := storage.Watch(ctx, services.Log.Location(), diag.Discard()); err == nil {
		model = model.WithChanges(ch)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
