package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/tui/ui"
)

// LogModel lists logged drinks for today or this week
type LogModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	spec   service.DateRangeSpec
	result *service.ListResult
	err    error
}

// logLoadedMsg is sent when entries are loaded
type logLoadedMsg struct {
	result *service.ListResult
	err    error
}

// NewLogModel creates a new log view model
func NewLogModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) LogModel {
	return LogModel{
		services: services,
		styles:   styles,
		keys:     keys,
		spec:     service.DateRangeSpec{Type: service.DateRangeToday},
	}
}

// Init implements tea.Model
func (m LogModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m LogModel) Update(msg tea.Msg) (LogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Today):
			m.spec = service.DateRangeSpec{Type: service.DateRangeToday}
			return m, m.load()
		case key.Matches(msg, m.keys.ThisWeek):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisWeek}
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case logLoadedMsg:
		m.result = msg.result
		m.err = msg.err

	case ui.LoggedMsg, ui.UndoneMsg, ui.StorageChangedMsg:
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

func (m LogModel) load() tea.Cmd {
	services, spec := m.services, m.spec
	return func() tea.Msg {
		result, err := services.Log.List(spec)
		return logLoadedMsg{result: result, err: err}
	}
}

// SetSize sets the view dimensions
func (m *LogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View implements tea.Model
func (m LogModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render("Drinks for " + m.result.Period))
	b.WriteString("\n")

	if n := len(m.result.Warnings); n > 0 {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d corrupted %s skipped, run 'sip validate'", n, pluralize("record", n))))
		b.WriteString("\n")
	}
	if m.result.Dirty {
		b.WriteString(m.styles.Warning.Render("Recent changes could not be saved"))
		b.WriteString("\n")
	}

	if len(m.result.Entries) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing logged yet."))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.result.Entries, m.styles, EntryRenderOptions{
		ShowDate: m.spec.Type != service.DateRangeToday,
		Width:    m.width,
	}))
	b.WriteString("\n")
	n := len(m.result.Entries)
	b.WriteString(m.styles.StatLabel.Render("Total:"))
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s in %d %s", formatUnits(m.result.TotalUnits), n, pluralize("drink", n))))
	b.WriteString("\n")

	return b.String()
}
