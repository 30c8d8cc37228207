// Package export writes logged drinks as CSV, JSON or an Excel workbook.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/entry"
	"github.com/xuri/excelize/v2"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet holding the drinks in an xlsx export
const SheetName = "Drinks"

const timeLayout = "2006-01-02 15:04"

// Header is the column order shared by CSV and xlsx
var Header = []string{"date", "time", "drink_name", "drink_category", "units", "is_custom_name", "timestamp", "timestamp_logged"}

// Metadata describes an export
type Metadata struct {
	ExportTimestamp time.Time      `json:"export_timestamp"`
	TotalEntries    int            `json:"total_entries"`
	TotalUnits      float64        `json:"total_units"`
	FilterCriteria  map[string]any `json:"filter_criteria"`
}

// Write encodes entries in the given format
func Write(w io.Writer, format string, entries []entry.Entry, meta Metadata) error {
	switch format {
	case FormatCSV:
		return CSV(w, entries)
	case FormatJSON:
		return JSON(w, entries, meta)
	case FormatXLSX:
		return XLSX(w, entries)
	default:
		return fmt.Errorf("unknown export format %q (use csv, json or xlsx)", format)
	}
}

// JSON writes a metadata header and the entries in storage schema
func JSON(w io.Writer, entries []entry.Entry, meta Metadata) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	if meta.FilterCriteria == nil {
		meta.FilterCriteria = map[string]any{}
	}
	meta.TotalEntries = len(entries)
	meta.TotalUnits = totalUnits(entries)

	output := struct {
		Metadata Metadata      `json:"metadata"`
		Entries  []entry.Entry `json:"entries"`
	}{Metadata: meta, Entries: entries}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// CSV writes one row per entry below Header
func CSV(w io.Writer, entries []entry.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writer.Write(row(e)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func row(e entry.Entry) []string {
	return []string{
		e.OccurredAt.Format("2006-01-02"),
		e.OccurredAt.Format("15:04"),
		e.Name,
		e.Category,
		strconv.FormatFloat(e.Units, 'f', -1, 64),
		strconv.FormatBool(e.IsCustomName),
		e.OccurredAt.Format(time.RFC3339Nano),
		e.LoggedAt.Format(time.RFC3339Nano),
	}
}

// XLSX writes a workbook with one sheet of drinks and a total row
func XLSX(w io.Writer, entries []entry.Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			e.OccurredAt.Format("2006-01-02"),
			e.OccurredAt.Format("15:04"),
			e.Name,
			e.Category,
			e.Units,
			e.IsCustomName,
			e.OccurredAt.Format(timeLayout),
			e.LoggedAt.Format(timeLayout),
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, len(entries)+2)
	if err := sw.SetRow(totalCell, []any{"total", "", "", "", totalUnits(entries)}); err != nil {
		return err
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

func totalUnits(entries []entry.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Units
	}
	return total
}
