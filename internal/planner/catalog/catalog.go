package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"interior-planner/internal/planner/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// ============================================================
// Catalog
// ============================================================

// Catalog: неизменяемая таблица мебели, индексированная по SKU.
type Catalog struct {
	items []models.FurnitureItem
	bySKU map[string]int
}

// Default возвращает встроенный каталог.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

// Load читает каталог из YAML файла; пустой путь означает встроенный каталог.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var items []models.FurnitureItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(items)
}

// New проверяет уникальность SKU и строит индекс.
func New(items []models.FurnitureItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]models.FurnitureItem, 0, len(items)),
		bySKU: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if item.SKU == "" {
			return nil, fmt.Errorf("catalog item %q has empty sku", item.Name)
		}
		if _, dup := c.bySKU[item.SKU]; dup {
			return nil, fmt.Errorf("duplicate sku %q", item.SKU)
		}
		if item.Variants == nil {
			item.Variants = []models.FurnitureVariant{}
		}
		c.bySKU[item.SKU] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// List возвращает копию списка в исходном порядке.
func (c *Catalog) List() []models.FurnitureItem {
	out := make([]models.FurnitureItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Find(sku string) (models.FurnitureItem, bool) {
	idx, ok := c.bySKU[sku]
	if !ok {
		return models.FurnitureItem{}, false
	}
	return c.items[idx], true
}
