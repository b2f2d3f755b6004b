package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/ghodss/yaml"
)

// Presets offered by the theme picker.
var Presets = []Theme{
	{
		ID:          "tech-startup",
		Name:        "Tech Startup",
		Description: "Modern, clean design with bold gradients and tech-focused imagery",
		Colors: Colors{
			Primary:    "#3B82F6",
			Secondary:  "#1E40AF",
			Accent:     "#F59E0B",
			Text:       "#1F2937",
			Background: "#FFFFFF",
		},
	},
	{
		ID:          "portfolio",
		Name:        "Portfolio",
		Description: "Elegant and artistic with sophisticated typography and creative layouts",
		Colors: Colors{
			Primary:    "#6366F1",
			Secondary:  "#4F46E5",
			Accent:     "#EC4899",
			Text:       "#374151",
			Background: "#F9FAFB",
		},
	},
	{
		ID:          "event",
		Name:        "Event",
		Description: "Vibrant and energetic with dynamic colors and engaging visuals",
		Colors: Colors{
			Primary:    "#EF4444",
			Secondary:  "#DC2626",
			Accent:     "#F97316",
			Text:       "#111827",
			Background: "#FFFFFF",
		},
	},
}

// Catalog is a read-only set of named themes, keyed by ID.
type Catalog struct {
	themes map[string]Theme
}

type catalogFile struct {
	Themes []Theme `json:"themes"`
}

func NewCatalog(themes ...Theme) *Catalog {
	c := &Catalog{
		themes: make(map[string]Theme, len(themes)),
	}
	for _, t := range themes {
		c.themes[t.ID] = t
	}
	return c
}

// DefaultCatalog contains the built-in presets.
func DefaultCatalog() *Catalog {
	return NewCatalog(Presets...)
}

// LoadCatalog returns the built-in presets merged with the themes listed in a YAML file.
// Themes from the file replace built-in presets with the same ID.
//
//	themes:
//	  - id: forest
//	    name: Forest
//	    colors:
//	      primary: "#2f855a"
func LoadCatalog(path string) (*Catalog, error) {
	c := DefaultCatalog()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open file: %s", path, err)
	}

	file := &catalogFile{}
	err = yaml.Unmarshal(data, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}

	for i, t := range file.Themes {
		if t.ID == "" {
			return nil, fmt.Errorf("%s: theme #%d has no id", path, i+1)
		}
		c.themes[t.ID] = t
	}

	return c, nil
}

func (c *Catalog) Lookup(id string) (Theme, bool) {
	t, ok := c.themes[id]
	return t, ok
}

// List returns all themes sorted by ID.
func (c *Catalog) List() []Theme {
	themes := make([]Theme, 0, len(c.themes))
	for _, t := range c.themes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool {
		return themes[i].ID < themes[j].ID
	})
	return themes
}
