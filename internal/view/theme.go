package view

// Mode is color scheme of the page.
type Mode string

// Available modes.
const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode returns mode for given name. Unknown names return false.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDark:
		return ModeDark, true
	case ModeLight:
		return ModeLight, true
	}
	return "", false
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Palette holds css colors derived from the mode.
type Palette struct {
	Background    string
	Paper         string
	Border        string
	Text          string
	TextSecondary string
	Link          string
	Shadow        string
	Error         string
}

// Palette returns colors for the mode. Anything other than dark is light.
func (m Mode) Palette() Palette {
	if m == ModeDark {
		return Palette{
			Background:    "#0d1117",
			Paper:         "#161b22",
			Border:        "#30363d",
			Text:          "#e6edf3",
			TextSecondary: "#8b949e",
			Link:          "#58a6ff",
			Shadow:        "0 4px 12px rgba(1, 4, 9, 0.75)",
			Error:         "#f85149",
		}
	}
	return Palette{
		Background:    "#ffffff",
		Paper:         "#ffffff",
		Border:        "rgba(27, 31, 36, 0.15)",
		Text:          "#24292f",
		TextSecondary: "#57606a",
		Link:          "#0969da",
		Shadow:        "0 1px 6px rgba(27, 31, 36, 0.15)",
		Error:         "#cf222e",
	}
}
