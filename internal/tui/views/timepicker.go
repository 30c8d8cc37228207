package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/timeselect"
	"github.com/xolan/sip/internal/tui/ui"
)

// pickerRow is a row of the time picker
type pickerRow int

const (
	rowOffsets pickerRow = iota
	rowHours
	rowMinutes
)

// TimePicker offers "minutes ago" shortcuts and an hour/minute grid.
// Hour and minute may be picked in either order; the second pick resolves.
type TimePicker struct {
	grid   *timeselect.Grid
	now    func() time.Time
	loc    *time.Location
	row    pickerRow
	cursor [3]int
}

// NewTimePicker creates a picker resolving against now in loc
func NewTimePicker(now func() time.Time, loc *time.Location) TimePicker {
	return TimePicker{
		grid: timeselect.NewGrid(now, loc),
		now:  now,
		loc:  loc,
	}
}

// Reset clears any partial selection and puts the cursor on the offsets.
func (p *TimePicker) Reset() {
	p.grid.Cancel()
	p.row = rowOffsets
	p.cursor = [3]int{}
	p.cursor[rowHours] = p.now().In(p.loc).Hour()
}

// HandleKey moves the cursor or picks. done is true once a time is chosen.
func (p *TimePicker) HandleKey(msg tea.KeyMsg, keys ui.KeyMap) (when service.When, done bool, err error) {
	switch {
	case key.Matches(msg, keys.Up):
		p.row = (p.row + 2) % 3
	case key.Matches(msg, keys.Down):
		p.row = (p.row + 1) % 3
	case key.Matches(msg, keys.Left):
		n := p.rowLen(p.row)
		p.cursor[p.row] = (p.cursor[p.row] - 1 + n) % n
	case key.Matches(msg, keys.Right):
		p.cursor[p.row] = (p.cursor[p.row] + 1) % p.rowLen(p.row)
	case key.Matches(msg, keys.Select):
		return p.pick()
	}
	return service.When{}, false, nil
}

func (p *TimePicker) pick() (service.When, bool, error) {
	c := p.cursor[p.row]

	switch p.row {
	case rowOffsets:
		p.grid.Cancel()
		return service.Offset(timeselect.Offsets[c]), true, nil

	case rowHours:
		t, resolved, err := p.grid.SelectHour(c)
		if err != nil {
			return service.When{}, false, err
		}
		if resolved {
			return service.Clock(t.Hour(), t.Minute()), true, nil
		}
		p.row = rowMinutes

	case rowMinutes:
		t, resolved, err := p.grid.SelectMinute(timeselect.Minutes[c])
		if err != nil {
			return service.When{}, false, err
		}
		if resolved {
			return service.Clock(t.Hour(), t.Minute()), true, nil
		}
		p.row = rowHours
	}

	return service.When{}, false, nil
}

func (p *TimePicker) rowLen(r pickerRow) int {
	switch r {
	case rowOffsets:
		return len(timeselect.Offsets)
	case rowHours:
		return 24
	default:
		return len(timeselect.Minutes)
	}
}

// Cancel discards a partial hour or minute selection
func (p *TimePicker) Cancel() {
	p.grid.Cancel()
}

// State reports the grid selection state
func (p TimePicker) State() timeselect.State {
	return p.grid.State()
}

// View renders the picker for the named drink
func (p TimePicker) View(styles ui.Styles, drink string) string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("When did you have " + drink + "?"))
	b.WriteString("\n")

	var offsets []string
	for i, m := range timeselect.Offsets {
		offsets = append(offsets, p.option(styles, rowOffsets, i, timeselect.OffsetLabel(m), false, false))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, offsets...))
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("or pick an hour and a minute:"))
	b.WriteString("\n")

	nowHour := p.now().In(p.loc).Hour()
	markedHour, hourSet := p.grid.Hour()
	for _, start := range []int{0, 12} {
		var hours []string
		for h := start; h < start+12; h++ {
			marked := hourSet && markedHour == h
			hours = append(hours, p.option(styles, rowHours, h, fmt.Sprintf("%02d", h), marked, h > nowHour))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, hours...))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	markedMinute, minuteSet := p.grid.Minute()
	var minutes []string
	for i, m := range timeselect.Minutes {
		marked := minuteSet && markedMinute == m
		minutes = append(minutes, p.option(styles, rowMinutes, i, fmt.Sprintf(":%02d", m), marked, false))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, minutes...))
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("←/→ choose  ↑/↓ row  enter pick  esc cancel"))

	return styles.Dialog.Render(b.String())
}

func (p TimePicker) option(styles ui.Styles, r pickerRow, i int, label string, marked, later bool) string {
	switch {
	case p.row == r && p.cursor[r] == i:
		return styles.OptionFocused.Render(label)
	case marked:
		return styles.OptionMarked.Render(label)
	case later:
		return styles.OptionDisabled.Render(label)
	default:
		return styles.Option.Render(label)
	}
}
