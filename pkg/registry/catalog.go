// pkg/registry/catalog.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bit-tools/internal/models"
)

// Catalog is the exportable, processor-free view of the registry. It feeds
// the catalog-export tool and external consumers that only need descriptors.
type Catalog struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Tools       []CatalogEntry `json:"tools"`
}

// CatalogEntry describes one registered tool.
type CatalogEntry struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Family         models.Family           `json:"family"`
	Route          string                  `json:"route"`
	ResponseSchema string                  `json:"responseSchema,omitempty"`
	Fields         map[string]models.Field `json:"fields"`
	FieldOrder     []string                `json:"fieldOrder"`
	Categories     []string                `json:"categories,omitempty"`
}

// Export builds the catalog snapshot of the registry.
func (r *Registry) Export() Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := Catalog{
		GeneratedAt: time.Now().UTC(),
		Tools:       make([]CatalogEntry, 0, len(r.order)),
	}
	for _, id := range r.order {
		tool := r.tools[id]
		catalog.Tools = append(catalog.Tools, CatalogEntry{
			ID:             id,
			Name:           tool.Name,
			Description:    tool.Description,
			Family:         tool.Family,
			Route:          tool.Route(),
			ResponseSchema: tool.ResponseSchema,
			Fields:         tool.Fields,
			FieldOrder:     tool.FieldOrder,
			Categories:     r.categoriesOf(id),
		})
	}
	return catalog
}

func (r *Registry) categoriesOf(id string) []string {
	var cats []string
	for _, cat := range r.catOrder {
		for _, member := range r.categories[cat] {
			if member == id {
				cats = append(cats, cat)
				break
			}
		}
	}
	return cats
}

// WriteFile writes the catalog as indented JSON.
func (c Catalog) WriteFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// LoadCatalog reads a catalog file written by WriteFile.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return catalog, nil
}
