package models

// ============================================================
// Project Models
// ============================================================

// Point: координата в долях изображения (0..1 по каждой оси).
type Point [2]float64

type WallImage struct {
	WallID   string `json:"wall_id"`
	Filename string `json:"filename"`
}

type WallCalibration struct {
	LeftCorner  Point   `json:"left_corner"`
	RightCorner Point   `json:"right_corner"`
	FloorLineY  float64 `json:"floor_line_y"`
}

type RoomScale struct {
	ReferenceWall    string  `json:"reference_wall"`
	ReferenceLengthM float64 `json:"reference_length_m"`
}

// FurniturePlacement хранит SKU и вариант как есть, без сверки с каталогом.
// RotationDeg выводится только подписью, бокс не поворачивается.
type FurniturePlacement struct {
	SKU         string  `json:"sku"`
	Variant     string  `json:"variant"`
	WallID      string  `json:"wall_id"`
	Position    Point   `json:"position"`
	RotationDeg float64 `json:"rotation_deg"`
}

type Project struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Walls        map[string]WallImage       `json:"walls"`
	Calibrations map[string]WallCalibration `json:"calibrations"`
	Scale        *RoomScale                 `json:"scale"`
	Placements   []FurniturePlacement       `json:"placements"`
}

// NewProject возвращает проект с пустыми коллекциями.
func NewProject(id, name string) *Project {
	return &Project{
		ID:           id,
		Name:         name,
		Walls:        make(map[string]WallImage),
		Calibrations: make(map[string]WallCalibration),
		Placements:   []FurniturePlacement{},
	}
}

func (p *Project) SetWallImage(wallID, filename string) {
	if p.Walls == nil {
		p.Walls = make(map[string]WallImage)
	}
	p.Walls[wallID] = WallImage{WallID: wallID, Filename: filename}
}

func (p *Project) SetCalibration(wallID string, cal WallCalibration) {
	if p.Calibrations == nil {
		p.Calibrations = make(map[string]WallCalibration)
	}
	p.Calibrations[wallID] = cal
}

func (p *Project) SetScale(scale RoomScale) {
	p.Scale = &scale
}

// AddPlacement добавляет размещение в конец списка и возвращает новую длину.
func (p *Project) AddPlacement(placement FurniturePlacement) int {
	p.Placements = append(p.Placements, placement)
	return len(p.Placements)
}

// PlacementsForWall сохраняет порядок добавления.
func (p *Project) PlacementsForWall(wallID string) []FurniturePlacement {
	var out []FurniturePlacement
	for _, placement := range p.Placements {
		if placement.WallID == wallID {
			out = append(out, placement)
		}
	}
	return out
}

// ============================================================
// Render Models
// ============================================================

type RenderedWall struct {
	WallID    string `json:"wall_id"`
	ImagePath string `json:"image_path"`
}
