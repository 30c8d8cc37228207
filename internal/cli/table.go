package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/xolan/sip/internal/catalog"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/stats"
)

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	warn  = color.New(color.FgHiYellow)
)

// EntryTable renders entries one per row. Dates are shown when the entries
// span more than one day.
func EntryTable(w io.Writer, entries []entry.Entry) {
	showDate := SpansMultipleDays(entries)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40

	for i, e := range entries {
		idx := faint.Sprintf("[%d]", i+1)
		when := FormatWhen(e)
		if showDate {
			when = e.OccurredAt.Format("Mon Jan 2") + " " + when
		}
		name := e.Name
		if e.IsCustomName {
			name += "*"
		}
		tbl.AddRow(idx, when, name, faint.Sprint(e.Category), strconv.FormatFloat(e.Units, 'f', 1, 64))
	}
	tbl.RightAlign(4)

	_, _ = fmt.Fprintln(w, tbl)
}

// CatalogTable renders the drink catalog grouped by category
func CatalogTable(w io.Writer, c *catalog.Catalog) {
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, cat := range c.Categories() {
		tbl.AddRow(bold.Sprint(cat), "")
		for _, d := range c.ByCategory(cat) {
			tbl.AddRow("  "+d.Name, strconv.FormatFloat(d.Units, 'f', 1, 64))
		}
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(w, tbl)
}

// BreakdownTable renders category or drink totals with their share of units
func BreakdownTable(w io.Writer, title string, rows []stats.Breakdown, total float64) {
	if len(rows) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), "", "", "")
	for _, b := range rows {
		share := 0.0
		if total > 0 {
			share = b.TotalUnits / total * 100
		}
		tbl.AddRow("  "+b.Name, FormatUnits(b.TotalUnits), fmt.Sprintf("%d %s", b.EntryCount, Pluralize("drink", b.EntryCount)), fmt.Sprintf("%.0f%%", share))
	}
	tbl.RightAlign(1)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(w, tbl)
}

// DayTable renders per-day totals, flagging days over the limit
func DayTable(w io.Writer, days []stats.DayTotal, limit float64) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		units := FormatUnits(d.Units)
		if limit > 0 && d.Units > limit {
			units = warn.Sprint(units + " !")
		} else if d.Units == 0 {
			units = faint.Sprint("drink-free")
		}
		tbl.AddRow("  "+d.Date.Format("Mon Jan 2"), units)
	}

	_, _ = fmt.Fprintln(w, tbl)
}

// Warn renders s in the warning color
func Warn(s string) string {
	return warn.Sprint(s)
}

// Bold renders s in bold
func Bold(s string) string {
	return bold.Sprint(s)
}
