package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/sip/internal/catalog"
	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/service"
	"github.com/xolan/sip/internal/timeselect"
	"github.com/xolan/sip/internal/undo"
)

// ParseWhen turns the --ago and --at flags into a time choice.
func ParseWhen(ago int, at string) (service.When, error) {
	if ago != 0 && at != "" {
		return service.When{}, errors.New("cannot use --ago with --at")
	}

	if ago != 0 {
		if !timeselect.ValidOffset(ago) {
			return service.When{}, fmt.Errorf("%w: got %d", timeselect.ErrInvalidOffset, ago)
		}
		return service.Offset(ago), nil
	}

	if at != "" {
		t, err := timeselect.NewGrid(nil, time.UTC).ParseClock(at)
		if err != nil {
			return service.When{}, err
		}
		return service.Clock(t.Hour(), t.Minute()), nil
	}

	return service.Now(), nil
}

// LogDrink logs the catalog drink called name
func LogDrink(deps *cli.Deps, name string, when service.When) {
	d, err := deps.Services.Catalog.Find(name)
	if err != nil {
		var le *catalog.LoadError
		switch {
		case errors.As(err, &le):
			deps.Fail("Failed to load the drink catalog", err, "Check catalog_path in your config, or remove it to use the built-in catalog")
		case errors.Is(err, service.ErrUnknownDrink):
			deps.Fail(fmt.Sprintf("Unknown drink '%s'", name), nil, "List available drinks with 'sip drinks', or log a custom one with 'sip add'")
		default:
			deps.Fail("Failed to find drink", err, "")
		}
		return
	}

	e, _, err := deps.Services.Log.LogDrink(d, when)
	if err != nil {
		failLog(deps, err)
		return
	}
	reportLogged(deps, e)
}

// LogCustom logs a drink that is not in the catalog
func LogCustom(deps *cli.Deps, name, category, unitsStr string, when service.When) {
	if entry.NormalizeName(name) == "" {
		deps.Fail("Drink name cannot be empty", nil, "Usage: sip add --name 'Homebrew IPA' --units 2.5")
		return
	}

	units, err := entry.ParseUnits(unitsStr)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid units '%s'", unitsStr), err, "Use a number like 1.5 (a comma also works: 1,5)")
		return
	}

	e, _, err := deps.Services.Log.LogCustom(name, category, units, when)
	if err != nil {
		failLog(deps, err)
		return
	}
	reportLogged(deps, e)
}

func failLog(deps *cli.Deps, err error) {
	switch {
	case errors.Is(err, service.ErrFutureTime):
		deps.Fail("Cannot log a drink in the future", err, "Pick an earlier time with --at, or use --ago")
	case errors.Is(err, timeselect.ErrInvalidOffset):
		deps.Fail("Invalid --ago value", err, "Use 15, 30, 45 or 60")
	case errors.Is(err, timeselect.ErrInvalidHour), errors.Is(err, timeselect.ErrInvalidMinute):
		deps.Fail("Invalid --at time", err, "Use HH:MM with minutes 00, 15, 30 or 45")
	default:
		deps.Fail("Failed to log drink", err, "")
	}
}

func reportLogged(deps *cli.Deps, e entry.Entry) {
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s at %s\n", cli.FormatEntry(e), cli.FormatWhen(e))

	if deps.Services.Log.Dirty() {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: The drink log could not be saved; this drink is not on disk yet")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that %s is writable\n", deps.Services.Log.Location())
	}

	units, over := deps.Services.Stats.Today()
	line := fmt.Sprintf("Today: %s", cli.FormatUnits(units))
	if over {
		line = cli.Warn(fmt.Sprintf("%s (over your daily limit of %s)", line, cli.FormatUnits(deps.Services.Config.Get().DailyLimit)))
	}
	_, _ = fmt.Fprintln(deps.Stdout, line)

	if window := deps.Services.Log.UndoWindow(); window > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Undo with 'sip undo' within %s\n", cli.FormatRemaining(window))
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Undo with 'sip undo'")
	}
}

// Undo removes the most recently logged drink
func Undo(deps *cli.Deps) {
	e, err := deps.Services.Log.UndoLast()
	if err != nil {
		switch {
		case errors.Is(err, undo.ErrNothingToUndo):
			deps.Fail("Nothing to undo", nil, "Only the most recent drink can be undone, once")
		case errors.Is(err, undo.ErrExpired):
			deps.Fail("Too late to undo", err, fmt.Sprintf("Drinks can be undone within %s of logging (undo_window in config)", cli.FormatRemaining(deps.Services.Log.UndoWindow())))
		default:
			deps.Fail("Failed to undo", err, "")
		}
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Undone: %s at %s\n", cli.FormatEntry(e), cli.FormatWhen(e))
	if deps.Services.Log.Dirty() {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: The drink log could not be saved; the change is not on disk yet")
	}
}
