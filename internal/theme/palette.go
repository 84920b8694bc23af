package theme

import "github.com/charmbracelet/lipgloss"

// ColourSet is one semantic colour with its foreground pairing.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette is the full set of semantic colours for one mode.
type Palette struct {
	Mode    Mode
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Neutral ColourSet
	// Strength colours the password meter from weakest to strongest.
	Strength [5]lipgloss.Color
}

var lightPalette = Palette{
	Mode:     Light,
	Primary:  ColourSet{Base: "#3b82f6", OnBase: "#f8fafc", Muted: "#2563eb"},
	Surface:  ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0"},
	Success:  ColourSet{Base: "#22c55e", OnBase: "#052e16", Muted: "#16a34a"},
	Warning:  ColourSet{Base: "#eab308", OnBase: "#422006", Muted: "#ca8a04"},
	Danger:   ColourSet{Base: "#ef4444", OnBase: "#7f1d1d", Muted: "#dc2626"},
	Neutral:  ColourSet{Base: "#64748b", OnBase: "#f8fafc", Muted: "#94a3b8"},
	Strength: [5]lipgloss.Color{"#dc2626", "#ea580c", "#ca8a04", "#16a34a", "#15803d"},
}

var darkPalette = Palette{
	Mode:     Dark,
	Primary:  ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"},
	Surface:  ColourSet{Base: "#0b1120", OnBase: "#e5e7eb", Muted: "#1f2937"},
	Success:  ColourSet{Base: "#4ade80", OnBase: "#022c22", Muted: "#15803d"},
	Warning:  ColourSet{Base: "#facc15", OnBase: "#422006", Muted: "#a16207"},
	Danger:   ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c"},
	Neutral:  ColourSet{Base: "#94a3b8", OnBase: "#cbd5f5", Muted: "#334155"},
	Strength: [5]lipgloss.Color{"#f87171", "#fb923c", "#facc15", "#4ade80", "#22c55e"},
}

// PaletteFor returns the palette for mode; unknown modes get light.
func PaletteFor(mode Mode) Palette {
	if mode == Dark {
		return darkPalette
	}
	return lightPalette
}
