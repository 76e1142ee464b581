// Package ui provides the screens and visual styling for the AgriLink
// terminal client, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette derived from the AgriLink brand: greens for growth, orange
// for trade, brown for soil.
var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f4f6f2")
	LightForeground = lipgloss.Color("#1e2d1f")
	LightPrimary    = lipgloss.Color("#2e7d32") // Deep green
	LightAccent     = lipgloss.Color("#4caf50") // Agri green
	LightSecondary  = lipgloss.Color("#e4e9e0")
	LightMuted      = lipgloss.Color("#7b8a7c")
	LightBorder     = lipgloss.Color("#d7ded3")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#141c15")
	DarkForeground = lipgloss.Color("#eef2ec")
	DarkPrimary    = lipgloss.Color("#81c784") // Light green (flipped)
	DarkAccent     = lipgloss.Color("#4caf50")
	DarkSecondary  = lipgloss.Color("#1f2c20")
	DarkMuted      = lipgloss.Color("#8aa08c")
	DarkBorder     = lipgloss.Color("#2c3b2d")
	DarkCard       = lipgloss.Color("#1a2619")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#4caf50")
	Warning     = lipgloss.Color("#ffc107")
	Info        = lipgloss.Color("#2196f3")
	Orange      = lipgloss.Color("#ff9800") // Buyer accent
	Brown       = lipgloss.Color("#795548")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor returns the theme matching the dark-mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// DetectTheme picks a theme from the terminal's ambient color scheme. Used
// only when no preference has been persisted yet.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI indices 0-6 and 8 are the
	// usual dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("AGRILINK_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Card    lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Forms
	FieldLabel lipgloss.Style
	FieldError lipgloss.Style
	Prompt     lipgloss.Style
	UserInput  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Navigation
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	// Badges
	Badge       lipgloss.Style
	FarmerBadge lipgloss.Style
	BuyerBadge  lipgloss.Style

	// Chat
	BubbleOwn   lipgloss.Style
	BubbleOther lipgloss.Style

	// Components
	Divider lipgloss.Style
	TrendUp lipgloss.Style
	TrendDn lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(theme.Background).
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(Destructive),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		NavInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		FarmerBadge: lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BuyerBadge: lipgloss.NewStyle().
			Background(Orange).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BubbleOwn: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		BubbleOther: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Foreground).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		TrendUp: lipgloss.NewStyle().
			Foreground(Success),

		TrendDn: lipgloss.NewStyle().
			Foreground(Destructive),
	}
}

// DefaultStyles returns styles with the ambient-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
