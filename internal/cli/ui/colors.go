// Package ui provides UI styling and output functions for the CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/aki/dircontents/internal/core/listing"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// SuccessStyle is the style for success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))

	// ErrorStyle is the style for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// WarningStyle is the style for warning messages
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))

	// BoldStyle is the style for bold text
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// SuccessIcon is the icon for success messages
	SuccessIcon = "✅"

	// ErrorIcon is the icon for error messages
	ErrorIcon = "❌"

	// WarningIcon is the icon for warning messages
	WarningIcon = "⚠️"
)

// ColorMode controls whether listings are colored
type ColorMode string

const (
	// ColorAuto colors output when the destination supports it
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colors
	ColorAlways ColorMode = "always"
	// ColorNever disables colors
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unsupported color mode: %s", s)
	}
}

// EffectiveColorMode applies the NO_COLOR convention on top of mode
func EffectiveColorMode(mode ColorMode) ColorMode {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ColorNever
	}
	return mode
}

// Palette maps listing colors to styles bound to one renderer
type Palette struct {
	styles map[listing.Color]lipgloss.Style
}

// NewPalette builds the listing palette for r. Colors use the basic ANSI
// indexes so they follow the user's terminal theme.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		styles: map[listing.Color]lipgloss.Style{
			listing.ColorDefault:    r.NewStyle().Foreground(lipgloss.Color("7")),
			listing.ColorDirectory:  r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
			listing.ColorSymlink:    r.NewStyle().Foreground(lipgloss.Color("6")),
			listing.ColorExecutable: r.NewStyle().Foreground(lipgloss.Color("2")),
			listing.ColorMissing:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			listing.ColorHeader:     r.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}
}

// Render styles text with the style of c. ColorNone and unknown colors
// return text unchanged.
func (p Palette) Render(text string, c listing.Color) string {
	style, ok := p.styles[c]
	if !ok {
		return text
	}
	return style.Render(text)
}

func applyColorMode(r *lipgloss.Renderer, mode ColorMode) {
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	}
}
