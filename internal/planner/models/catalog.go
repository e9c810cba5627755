package models

// ============================================================
// Catalog Models
// ============================================================

type FurnitureVariant struct {
	Color    string `json:"color" yaml:"color"`
	Material string `json:"material" yaml:"material"`
}

// FurnitureItem описывает позицию каталога. Размеры в метрах.
type FurnitureItem struct {
	SKU      string             `json:"sku" yaml:"sku"`
	Name     string             `json:"name" yaml:"name"`
	WidthM   float64            `json:"width_m" yaml:"width_m"`
	DepthM   float64            `json:"depth_m" yaml:"depth_m"`
	HeightM  float64            `json:"height_m" yaml:"height_m"`
	Variants []FurnitureVariant `json:"variants" yaml:"variants"`
}
