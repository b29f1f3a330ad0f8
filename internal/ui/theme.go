package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Danger   lipgloss.Color
	BarFill  lipgloss.Color
	BarEmpty lipgloss.Color
}

var palettes = map[string]palette{
	"diner": {
		Text:     lipgloss.Color("#f2e9de"),
		Muted:    lipgloss.Color("#9c917f"),
		Accent:   lipgloss.Color("#e8a33d"),
		Border:   lipgloss.Color("#5c5347"),
		Success:  lipgloss.Color("#8fbf6b"),
		Warning:  lipgloss.Color("#e8c547"),
		Danger:   lipgloss.Color("#d1603d"),
		BarFill:  lipgloss.Color("#8fbf6b"),
		BarEmpty: lipgloss.Color("#3a352d"),
	},
	"neon": {
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#ff79c6"),
		Border:   lipgloss.Color("#44475a"),
		Success:  lipgloss.Color("#50fa7b"),
		Warning:  lipgloss.Color("#f1fa8c"),
		Danger:   lipgloss.Color("#ff5555"),
		BarFill:  lipgloss.Color("#50fa7b"),
		BarEmpty: lipgloss.Color("#343746"),
	},
	"ledger": {
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#fabd2f"),
		Border:   lipgloss.Color("#665c54"),
		Success:  lipgloss.Color("#b8bb26"),
		Warning:  lipgloss.Color("#fe8019"),
		Danger:   lipgloss.Color("#fb4934"),
		BarFill:  lipgloss.Color("#b8bb26"),
		BarEmpty: lipgloss.Color("#3c3836"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["diner"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
