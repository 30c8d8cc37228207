package ui

import (
	"github.com/xolan/sip/internal/entry"
	"github.com/xolan/sip/internal/undo"
)

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// LoggedMsg reports the outcome of logging a drink.
type LoggedMsg struct {
	Entry entry.Entry
	Token undo.Token
	Err   error
}

// UndoneMsg reports the outcome of an undo.
type UndoneMsg struct {
	Entry entry.Entry
	Err   error
}

// StorageChangedMsg is broadcast when the drink log changed on disk.
type StorageChangedMsg struct{}
