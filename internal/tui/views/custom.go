package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/tui/ui"
)

const (
	fieldName = iota
	fieldCategory
	fieldUnits
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Category", "Units"}

// CustomDrink is a drink typed into the custom form
type CustomDrink struct {
	Name     string
	Category string
	Units    float64
}

// CustomForm collects a drink that is not in the catalog
type CustomForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// NewCustomForm creates an empty form
func NewCustomForm() CustomForm {
	var f CustomForm
	placeholders := [fieldCount]string{"Homebrew IPA", "Custom", "2.5"}
	limits := [fieldCount]int{60, 30, 6}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		f.inputs[i] = ti
	}
	return f
}

// Reset clears the form and focuses the name field
func (f *CustomForm) Reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.err = ""
	f.inputs[fieldName].Focus()
	return textinput.Blink
}

// Update handles a message. submitted carries the drink once enter is
// pressed on a valid form.
func (f *CustomForm) Update(msg tea.Msg, keys ui.KeyMap) (submitted *CustomDrink, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Field):
			step := 1
			if k.String() == "shift+tab" {
				step = fieldCount - 1
			}
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + step) % fieldCount
			f.inputs[f.focus].Focus()
			return nil, textinput.Blink
		case key.Matches(k, keys.Select):
			d, err := f.drink()
			if err != "" {
				f.err = err
				return nil, nil
			}
			return &d, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return nil, cmd
}

func (f *CustomForm) drink() (CustomDrink, string) {
	name := entry.NormalizeName(f.inputs[fieldName].Value())
	if name == "" {
		return CustomDrink{}, "Name cannot be empty"
	}
	units, err := entry.ParseUnits(f.inputs[fieldUnits].Value())
	if err != nil {
		return CustomDrink{}, "Units must be a number like 1.5"
	}
	return CustomDrink{
		Name:     name,
		Category: strings.TrimSpace(f.inputs[fieldCategory].Value()),
		Units:    units,
	}, ""
}

// View renders the form
func (f CustomForm) View(styles ui.Styles) string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Log a custom drink"))
	b.WriteString("\n")

	for i, in := range f.inputs {
		style := styles.Input
		if i == f.focus {
			style = styles.InputFocused
		}
		b.WriteString(styles.StatLabel.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(style.Render(in.View()))
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString(styles.Error.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("tab next field  enter log now  esc cancel"))

	return styles.Dialog.Render(b.String())
}
