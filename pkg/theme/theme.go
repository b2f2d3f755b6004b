package theme

import (
	"strings"
)

const (
	DefaultName = "default"
	CustomName  = "custom"
)

// Colors are the five palette slots of a landing page. Values are CSS colors
// and are used as given.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Colors      Colors `json:"colors"`
}

// DefaultPalette is used for every slot a theme leaves empty.
var DefaultPalette = Colors{
	Primary:    "#667eea",
	Secondary:  "#764ba2",
	Accent:     "#ff6b6b",
	Text:       "#333333",
	Background: "#f8f9fa",
}

func pick(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// Resolve fills every empty slot of t from DefaultPalette.
// A structurally incomplete theme degrades slot by slot and is never rejected.
func Resolve(t *Theme) Colors {
	if t == nil {
		return DefaultPalette
	}
	return Colors{
		Primary:    pick(t.Colors.Primary, DefaultPalette.Primary),
		Secondary:  pick(t.Colors.Secondary, DefaultPalette.Secondary),
		Accent:     pick(t.Colors.Accent, DefaultPalette.Accent),
		Text:       pick(t.Colors.Text, DefaultPalette.Text),
		Background: pick(t.Colors.Background, DefaultPalette.Background),
	}
}

// DisplayName is the theme name reported back to callers.
func DisplayName(t *Theme) string {
	switch {
	case t == nil:
		return DefaultName
	case strings.TrimSpace(t.Name) != "":
		return t.Name
	case strings.TrimSpace(t.ID) != "":
		return t.ID
	default:
		return CustomName
	}
}
