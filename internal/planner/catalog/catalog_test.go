package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"interior-planner/internal/planner/models"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	items := c.List()
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	if items[0].SKU != "IK101" || items[4].SKU != "IK560" {
		t.Errorf("unexpected order: first=%s last=%s", items[0].SKU, items[4].SKU)
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.SKU] {
			t.Errorf("duplicate sku %s", item.SKU)
		}
		seen[item.SKU] = true
		if len(item.Variants) != 2 {
			t.Errorf("%s: got %d variants, want 2", item.SKU, len(item.Variants))
		}
	}
}

func TestFind(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	tests := []struct {
		sku     string
		found   bool
		name    string
		widthM  float64
		heightM float64
	}{
		{sku: "IK320", found: true, name: "Matbord rund", widthM: 1.2, heightM: 0.74},
		{sku: "IK560", found: true, name: "Golvlampa", widthM: 0.45, heightM: 1.6},
		{sku: "NOPE", found: false},
		{sku: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.sku, func(t *testing.T) {
			item, ok := c.Find(tt.sku)
			if ok != tt.found {
				t.Fatalf("Find(%q) found=%v, want %v", tt.sku, ok, tt.found)
			}
			if !ok {
				return
			}
			if item.Name != tt.name || item.WidthM != tt.widthM || item.HeightM != tt.heightM {
				t.Errorf("Find(%q) = %+v", tt.sku, item)
			}
		})
	}
}

func TestNewRejectsDuplicateSKU(t *testing.T) {
	_, err := New([]models.FurnitureItem{{SKU: "A"}, {SKU: "A"}})
	if err == nil {
		t.Error("expected duplicate sku error")
	}
}

func TestNewRejectsEmptySKU(t *testing.T) {
	_, err := New([]models.FurnitureItem{{Name: "nameless"}})
	if err == nil {
		t.Error("expected empty sku error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("- sku: X1\n  name: Stool\n  width_m: 0.4\n  depth_m: 0.4\n  height_m: 0.45\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	item, ok := c.Find("X1")
	if !ok || item.Name != "Stool" {
		t.Fatalf("Find(X1) = %+v, %v", item, ok)
	}
	if item.Variants == nil {
		t.Error("variants should be an empty slice, not nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestListReturnsCopy(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	items := c.List()
	items[0].Name = "changed"
	if item, _ := c.Find(items[0].SKU); item.Name == "changed" {
		t.Error("List exposed internal storage")
	}
}
