package models

import "testing"

func TestNewProjectInitializesCollections(t *testing.T) {
	p := NewProject("p1", "Living room")
	if p.Walls == nil || p.Calibrations == nil || p.Placements == nil {
		t.Fatal("NewProject left a nil collection")
	}
	if p.Scale != nil {
		t.Error("scale should be absent on a new project")
	}
}

func TestPlacementsForWallKeepsInsertionOrder(t *testing.T) {
	p := NewProject("p1", "Living room")
	p.AddPlacement(FurniturePlacement{SKU: "A", WallID: "w1"})
	p.AddPlacement(FurniturePlacement{SKU: "B", WallID: "w2"})
	count := p.AddPlacement(FurniturePlacement{SKU: "C", WallID: "w1"})
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	got := p.PlacementsForWall("w1")
	if len(got) != 2 || got[0].SKU != "A" || got[1].SKU != "C" {
		t.Errorf("PlacementsForWall(w1) = %+v", got)
	}
	if got := p.PlacementsForWall("missing"); len(got) != 0 {
		t.Errorf("unexpected placements for unknown wall: %+v", got)
	}
}

func TestSetWallImageReplacesRecord(t *testing.T) {
	p := &Project{ID: "p1"}
	p.SetWallImage("w1", "a.jpg")
	p.SetWallImage("w1", "b.jpg")
	if len(p.Walls) != 1 || p.Walls["w1"].Filename != "b.jpg" {
		t.Errorf("walls = %+v", p.Walls)
	}
}
