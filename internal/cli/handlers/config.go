package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/sip/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day: %s\n", cfg.WeekStartDay)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:       %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "backend:        %s\n", cfg.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "data_dir:       %s\n", orDefault(cfg.DataDir, "(default)"))
	_, _ = fmt.Fprintf(deps.Stdout, "catalog_path:   %s\n", orDefault(cfg.CatalogPath, "(built-in)"))
	_, _ = fmt.Fprintf(deps.Stdout, "undo_window:    %s\n", cfg.UndoWindow)
	_, _ = fmt.Fprintf(deps.Stdout, "daily_limit:    %s\n", limitText(cfg.DailyLimit))
	_, _ = fmt.Fprintf(deps.Stdout, "theme:          %s\n", orDefault(cfg.Theme, "(default)"))
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:      %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "Drink log:      %s\n", deps.Services.Log.Location())
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func limitText(limit float64) string {
	if limit <= 0 {
		return "off"
	}
	return cli.FormatUnits(limit)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		deps.Fail("Failed to create config file", err, "")
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
