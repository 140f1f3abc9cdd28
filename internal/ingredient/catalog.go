package ingredient

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CatalogEntry is one ingredient in the static catalog shipped with the
// application.
type CatalogEntry struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// Catalog is the static ingredient collection, loaded once at startup and
// treated as read-only. It seeds the search engine and resolves display
// images by slug.
type Catalog struct {
	entries     []CatalogEntry
	imageBySlug map[string]string
	byName      map[string]CatalogEntry
}

// LoadCatalog reads the catalog JSON file at path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return NewCatalog(entries), nil
}

// NewCatalog builds a catalog from entries already in memory.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries:     entries,
		imageBySlug: make(map[string]string, len(entries)),
		byName:      make(map[string]CatalogEntry, len(entries)),
	}
	for _, e := range entries {
		if e.Slug != "" {
			c.imageBySlug[strings.ToLower(e.Slug)] = e.Image
		}
		c.byName[strings.ToLower(e.Name)] = e
	}
	return c
}

// Entries returns the catalog entries in file order.
func (c *Catalog) Entries() []CatalogEntry {
	return c.entries
}

// ImageForSlug resolves an ingredient image by its stable slug,
// case-insensitively. Returns "" when the slug is unknown.
func (c *Catalog) ImageForSlug(slug string) string {
	if slug == "" {
		return ""
	}
	return c.imageBySlug[strings.ToLower(slug)]
}

// EntryForName looks up a catalog entry by its name, case-insensitively.
func (c *Catalog) EntryForName(name string) (CatalogEntry, bool) {
	e, ok := c.byName[strings.ToLower(name)]
	return e, ok
}
