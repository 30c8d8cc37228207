package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/xolan/sip/internal/catalog"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/tui/ui"
)

const maxCellWidth = 22

type drinksMode int

const (
	modeGrid drinksMode = iota
	modePicker
	modeCustom
)

// DrinksModel shows the catalog as a grid of drink buttons.
type DrinksModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	catalog *catalog.Catalog
	err     error
	drinks  []catalog.Drink
	layout  []gridRow
	row     int
	col     int

	mode   drinksMode
	picker TimePicker
	form   CustomForm
	notice string

	today     float64
	overLimit bool
	last      *entry.Entry

	width  int
	height int
}

// gridRow is one rendered row of cells, all from one category
type gridRow struct {
	category string // set on the first row of a category
	drinks   []int  // indexes into DrinksModel.drinks
}

// todayLoadedMsg carries today's running total
type todayLoadedMsg struct {
	units     float64
	overLimit bool
	last      *entry.Entry
}

// NewDrinksModel creates a new drinks view model
func NewDrinksModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DrinksModel {
	cal := services.Log.Calendar()
	m := DrinksModel{
		services: services,
		styles:   styles,
		keys:     keys,
		picker:   NewTimePicker(cal.Now, cal.Loc),
		form:     NewCustomForm(),
		width:    80,
	}

	m.catalog, m.err = services.Catalog.Get()
	if m.catalog != nil {
		for _, cat := range m.catalog.Categories() {
			m.drinks = append(m.drinks, m.catalog.ByCategory(cat)...)
		}
	}
	m.relayout()
	return m
}

// Init implements tea.Model
func (m DrinksModel) Init() tea.Cmd {
	return m.loadToday()
}

// Update implements tea.Model
func (m DrinksModel) Update(msg tea.Msg) (DrinksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modePicker:
			return m.updatePicker(msg)
		case modeCustom:
			return m.updateCustom(msg)
		}
		return m.updateGrid(msg)

	case todayLoadedMsg:
		m.today = msg.units
		m.overLimit = msg.overLimit
		m.last = msg.last
		return m, nil

	case ui.LoggedMsg, ui.UndoneMsg, ui.StorageChangedMsg:
		return m, m.loadToday()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == modeCustom {
		_, cmd := m.form.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

func (m DrinksModel) updateGrid(msg tea.KeyMsg) (DrinksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Custom):
		m.mode = modeCustom
		return m, m.form.Reset()
	}

	if len(m.layout) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.col = max(m.col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.col = min(m.col+1, len(m.layout[m.row].drinks)-1)
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
			m.col = min(m.col, len(m.layout[m.row].drinks)-1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.layout)-1 {
			m.row++
			m.col = min(m.col, len(m.layout[m.row].drinks)-1)
		}
	case key.Matches(msg, m.keys.Select):
		return m, m.logDrink(m.Selected(), service.Now())
	case key.Matches(msg, m.keys.TimeMenu):
		m.mode = modePicker
		m.notice = ""
		m.picker.Reset()
	}
	return m, nil
}

func (m DrinksModel) updatePicker(msg tea.KeyMsg) (DrinksModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.picker.Cancel()
		m.mode = modeGrid
		return m, nil
	}

	when, done, err := m.picker.HandleKey(msg, m.keys)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if !done {
		return m, nil
	}

	m.mode = modeGrid
	return m, m.logDrink(m.Selected(), when)
}

func (m DrinksModel) updateCustom(msg tea.KeyMsg) (DrinksModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.mode = modeGrid
		return m, nil
	}

	d, cmd := m.form.Update(msg, m.keys)
	if d == nil {
		return m, cmd
	}

	m.mode = modeGrid
	services := m.services
	drink := *d
	return m, func() tea.Msg {
		e, tok, err := services.Log.LogCustom(drink.Name, drink.Category, drink.Units, service.Now())
		return ui.LoggedMsg{Entry: e, Token: tok, Err: err}
	}
}

// logDrink creates a command that logs d
func (m DrinksModel) logDrink(d catalog.Drink, when service.When) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		e, tok, err := services.Log.LogDrink(d, when)
		return ui.LoggedMsg{Entry: e, Token: tok, Err: err}
	}
}

func (m DrinksModel) loadToday() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		units, over := services.Stats.Today()
		msg := todayLoadedMsg{units: units, overLimit: over}
		if e, ok := services.Log.Last(); ok {
			msg.last = &e
		}
		return msg
	}
}

// Selected returns the drink under the cursor
func (m DrinksModel) Selected() catalog.Drink {
	if len(m.layout) == 0 {
		return catalog.Drink{}
	}
	return m.drinks[m.layout[m.row].drinks[m.col]]
}

// IsInputMode reports whether a popup or form has the keyboard
func (m DrinksModel) IsInputMode() bool {
	return m.mode != modeGrid
}

// SetSize sets the view dimensions and reflows the grid
func (m *DrinksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.relayout()
}

// cellWidth is the text width shared by all cells
func (m DrinksModel) cellWidth() int {
	w := 8
	for _, d := range m.drinks {
		w = max(w, runewidth.StringWidth(d.Name))
	}
	return min(w, maxCellWidth)
}

// relayout splits each category into rows that fit the width,
// keeping the cursor on the same drink.
func (m *DrinksModel) relayout() {
	selected := -1
	if len(m.layout) > 0 {
		selected = m.layout[m.row].drinks[m.col]
	}

	// border and padding add 4 columns per cell
	perRow := max((m.width-4)/(m.cellWidth()+4), 1)

	m.layout = nil
	for i := 0; i < len(m.drinks); {
		cat := m.drinks[i].Category
		first := true
		for i < len(m.drinks) && m.drinks[i].Category == cat {
			r := gridRow{}
			if first {
				r.category = cat
				first = false
			}
			for len(r.drinks) < perRow && i < len(m.drinks) && m.drinks[i].Category == cat {
				r.drinks = append(r.drinks, i)
				i++
			}
			m.layout = append(m.layout, r)
		}
	}

	m.row, m.col = 0, 0
	for ri, r := range m.layout {
		for ci, idx := range r.drinks {
			if idx == selected {
				m.row, m.col = ri, ci
			}
		}
	}
}

// View implements tea.Model
func (m DrinksModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Today: %s", formatUnits(m.today))
	if m.overLimit {
		b.WriteString(m.styles.Warning.Render(title + " (over your daily limit)"))
	} else {
		b.WriteString(m.styles.ViewTitle.Render(title))
	}
	if m.last != nil {
		loc := m.services.Log.Calendar().Loc
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  Last: %s at %s", m.last.Name, m.last.OccurredAt.In(loc).Format("15:04"))))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Fix catalog_path in your config. Custom drinks (c) still work."))
		b.WriteString("\n")
	}

	switch m.mode {
	case modePicker:
		b.WriteString(m.picker.View(m.styles, m.Selected().Name))
		if m.notice != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.Error.Render(m.notice))
		}
		return b.String()
	case modeCustom:
		b.WriteString(m.form.View(m.styles))
		return b.String()
	}

	w := m.cellWidth()
	for ri, r := range m.layout {
		if r.category != "" {
			b.WriteString(m.styles.Category.Render(r.category))
			b.WriteString("\n")
		}
		var cells []string
		for ci, idx := range r.drinks {
			d := m.drinks[idx]
			name := runewidth.FillRight(runewidth.Truncate(d.Name, w, "…"), w)
			units := m.styles.CellUnits.Render(runewidth.FillLeft(formatUnits(d.Units), w))
			style := m.styles.Cell
			if ri == m.row && ci == m.col {
				style = m.styles.CellSelected
			}
			cells = append(cells, style.Render(name+"\n"+units))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}
