package stats

import (
	"fmt"
	"math"
)

// Comparison is the change from a previous period to the current one
type Comparison struct {
	UnitsDiff       float64
	EntryCountDiff  int
	DrinkFreeDiff   int
	PreviousUnits   float64
	PercentageDiff  float64
	HasPreviousData bool
}

// CompareStatistics compares current against previous
func CompareStatistics(current, previous Statistics) Comparison {
	c := Comparison{
		UnitsDiff:       current.TotalUnits - previous.TotalUnits,
		EntryCountDiff:  current.EntryCount - previous.EntryCount,
		DrinkFreeDiff:   current.DrinkFreeDays - previous.DrinkFreeDays,
		PreviousUnits:   previous.TotalUnits,
		HasPreviousData: previous.EntryCount > 0,
	}
	if previous.TotalUnits > 0 {
		c.PercentageDiff = c.UnitsDiff / previous.TotalUnits * 100
	}
	return c
}

// FormatComparison renders a comparison such as "down 3.5 units from last week".
func FormatComparison(c Comparison, periodName string) string {
	if !c.HasPreviousData {
		return fmt.Sprintf("no drinks logged last %s", periodName)
	}

	diff := math.Round(c.UnitsDiff*10) / 10
	switch {
	case diff > 0:
		return fmt.Sprintf("up %s from last %s", FormatUnits(diff), periodName)
	case diff < 0:
		return fmt.Sprintf("down %s from last %s", FormatUnits(-diff), periodName)
	default:
		return fmt.Sprintf("same as last %s", periodName)
	}
}

// FormatUnits renders units with one decimal, e.g. "2.3 units" or "1 unit".
func FormatUnits(u float64) string {
	s := fmt.Sprintf("%.1f", u)
	if s == "1.0" {
		return "1 unit"
	}
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}
	return s + " units"
}
