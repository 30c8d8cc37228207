// Package views holds the screens of the terminal UI.
package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/stats"
	"github.com/xolan/sip/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	ShowDate bool // Show date in addition to time
	Width    int  // Available width for rendering
}

// RenderEntryList renders entries with aligned columns
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	layout := "15:04"
	if opts.ShowDate {
		layout = "Mon Jan 2 15:04"
	}

	nameWidth := 0
	for _, e := range entries {
		nameWidth = max(nameWidth, runewidth.StringWidth(displayName(e)))
	}
	// time, units and gaps take about 30 columns
	nameWidth = min(nameWidth, max(opts.Width-30, 16))

	var b strings.Builder
	for _, e := range entries {
		when := e.OccurredAt.Format(layout)
		if e.Backdated() {
			when += "*"
		}
		name := runewidth.FillRight(runewidth.Truncate(displayName(e), nameWidth, "…"), nameWidth)

		b.WriteString(styles.EntryTime.Render(fmt.Sprintf("%-16s", when)))
		b.WriteString(" ")
		b.WriteString(styles.EntryName.Render(name))
		b.WriteString("  ")
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%-12s", e.Category)))
		b.WriteString(styles.EntryUnits.Render(fmt.Sprintf("%5.1f", e.Units)))
		b.WriteString("\n")
	}

	return b.String()
}

// displayName marks custom drinks with an asterisk
func displayName(e entry.Entry) string {
	if e.IsCustomName {
		return e.Name + "*"
	}
	return e.Name
}

func formatUnits(u float64) string {
	return stats.FormatUnits(u)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
