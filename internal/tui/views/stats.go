package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	result *service.StatsResult
	weekly bool // true = weekly, false = monthly
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		weekly:   true,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result *service.StatsResult
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ThisWeek):
			m.weekly = true
			return m, m.loadStats()
		case key.Matches(msg, m.keys.ThisMonth):
			m.weekly = false
			return m, m.loadStats()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.result = msg.result

	case ui.LoggedMsg, ui.UndoneMsg, ui.StorageChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	title := "Weekly Statistics"
	if !m.weekly {
		title = "Monthly Statistics"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	s := m.result.Statistics
	b.WriteString(m.renderStatLine("Total units:", formatUnits(s.TotalUnits)))
	b.WriteString(m.renderStatLine("Drinks:", fmt.Sprintf("%d", s.EntryCount)))
	b.WriteString(m.renderStatLine("Average per day:", formatUnits(s.AverageUnitsPerDay)))
	b.WriteString(m.renderStatLine("Drink-free days:", fmt.Sprintf("%d of %d", s.DrinkFreeDays, s.TotalDays)))
	if m.result.DailyLimit > 0 {
		line := m.renderStatLine("Days over limit:", fmt.Sprintf("%d", s.DaysOverLimit))
		if s.DaysOverLimit > 0 {
			line = m.styles.Warning.Render(line)
		}
		b.WriteString(line)
	}

	if m.result.Comparison != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatLine("Comparison:", m.result.Comparison))
	}

	if len(m.result.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("By Category"))
		b.WriteString("\n")
		for _, c := range m.result.Categories {
			name := runewidth.FillRight(runewidth.Truncate(c.Name, 20, "…"), 20)
			b.WriteString(fmt.Sprintf("  %s %10s  (%d %s)\n", name, formatUnits(c.TotalUnits), c.EntryCount, pluralize("drink", c.EntryCount)))
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats
func (m StatsModel) loadStats() tea.Cmd {
	services, weekly := m.services, m.weekly
	return func() tea.Msg {
		if weekly {
			return statsLoadedMsg{result: services.Stats.Weekly()}
		}
		return statsLoadedMsg{result: services.Stats.Monthly()}
	}
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}
