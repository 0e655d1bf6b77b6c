package theme

import (
	"fmt"
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Border    color.Color
}

// Shared colors. Only the primary and secondary hues change between themes.
var (
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
	Accent  = lipgloss.Color("#F97316") // Orange
)

// DefaultName is the theme used when none is configured.
const DefaultName = "purple"

var palettes = map[string]Palette{
	"purple": withHues("#8B5CF6", "#14B8A6"),
	"blue":   withHues("#3B82F6", "#06B6D4"),
	"green":  withHues("#22C55E", "#84CC16"),
	"orange": withHues("#F97316", "#FACC15"),
	"pink":   withHues("#EC4899", "#A855F7"),
}

func withHues(primary, secondary string) Palette {
	return Palette{
		Primary:   lipgloss.Color(primary),
		Secondary: lipgloss.Color(secondary),
		Accent:    Accent,
		Success:   Success,
		Error:     Error,
		Text:      Text,
		TextDim:   TextDim,
		Border:    Border,
	}
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Styles are the lipgloss styles used by the CLI output.
type Styles struct {
	Palette Palette

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style

	// Layout
	Card lipgloss.Style

	// States
	Question  lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Revealed  lipgloss.Style
}

// New builds the styles for the named theme. An empty name selects
// DefaultName.
func New(name string) (Styles, error) {
	if name == "" {
		name = DefaultName
	}
	p, ok := palettes[name]
	if !ok {
		return Styles{}, fmt.Errorf("unknown theme %q", name)
	}
	return fromPalette(p), nil
}

// Default returns the styles for DefaultName.
func Default() Styles {
	return fromPalette(palettes[DefaultName])
}

func fromPalette(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim),

		Body: lipgloss.NewStyle().
			Foreground(p.Text),

		Hint: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),

		Question: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Correct: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),

		Incorrect: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Revealed: lipgloss.NewStyle().
			Foreground(p.Accent),
	}
}
