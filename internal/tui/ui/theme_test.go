package ui

import (
	"testing"
)

func TestNewThemeProvider(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  string
	}{
		{"empty uses default", "", DefaultTheme},
		{"known theme", "nord", "nord"},
		{"unknown theme keeps default", "nonexistent-theme-xyz", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewThemeProvider(tt.theme)
			if got := tp.CurrentName(); got != tt.want {
				t.Errorf("CurrentName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for invalid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestThemeProvider_NextTheme(t *testing.T) {
	tp := NewThemeProvider("dracula")

	next := tp.NextTheme()

	if tp.CurrentName() != next {
		t.Errorf("CurrentName() = %q, want %q", tp.CurrentName(), next)
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	for i := 1; i < len(themes); i++ {
		if themes[i] < themes[i-1] {
			t.Errorf("themes not sorted: %q < %q", themes[i], themes[i-1])
		}
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("dracula")

	styles := tp.Styles()

	if styles.App.GetPaddingTop() == 0 {
		t.Error("expected App style to have padding")
	}
	if tp.CurrentDisplayName() == "" {
		t.Error("expected non-empty display name")
	}
}
