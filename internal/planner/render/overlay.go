package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"interior-planner/internal/planner/models"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// пикселей на метр номинального размера; калибровка стены не учитывается
	pixelsPerMeter = 20
	minBoxWidth    = 80
	minBoxHeight   = 50

	labelOffset      = 6
	labelLineSpacing = 4
)

// Lookup ищет позиции каталога по SKU.
type Lookup interface {
	Find(sku string) (models.FurnitureItem, bool)
}

// Box описывает рамку размещения в пикселях. Правый и нижний края включительно:
// рамка занимает Width+1 × Height+1 пикселей.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ============================================================
// Compositor
// ============================================================

type Compositor struct {
	catalog Lookup
	style   Style
	face    *basicfont.Face
}

func NewCompositor(catalog Lookup, style Style) *Compositor {
	return &Compositor{
		catalog: catalog,
		style:   style,
		face:    basicfont.Face7x13,
	}
}

// Overlay рисует прозрачный слой width×height с рамкой и подписью для каждого
// размещения в порядке добавления. Фильтрацию по стене делает вызывающая сторона.
// Рамки за пределами холста просто обрезаются.
func (c *Compositor) Overlay(width, height int, placements []models.FurniturePlacement) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, width, height))

	for _, p := range placements {
		item, found := c.catalog.Find(p.SKU)
		box := BoxFor(item, found, p, width, height)

		label := p.SKU
		if found {
			label = item.Name
		}

		lines := []string{label, p.Variant, formatRotation(p.RotationDeg)}
		textX, textY := box.X+labelOffset, box.Y+labelOffset

		// координаты шрифта 26.6 переполняются далеко за холстом
		visible := box.bounds().Union(c.labelBounds(textX, textY, lines))
		if !visible.Overlaps(layer.Bounds()) {
			continue
		}

		fillBox(layer, box, c.style.Fill)
		strokeBox(layer, box, c.style.Outline)
		c.drawLines(layer, textX, textY, lines)
	}

	return layer
}

// BoxFor переводит долевую позицию в пиксели (с отбрасыванием дробной части)
// и задаёт размер по номинальным габаритам с минимальным порогом.
// Без позиции каталога габариты считаются равными 1 м.
func BoxFor(item models.FurnitureItem, found bool, p models.FurniturePlacement, width, height int) Box {
	widthM, heightM := 1.0, 1.0
	if found {
		widthM, heightM = item.WidthM, item.HeightM
	}

	return Box{
		X:      int(p.Position[0] * float64(width)),
		Y:      int(p.Position[1] * float64(height)),
		Width:  max(minBoxWidth, int(widthM*pixelsPerMeter)),
		Height: max(minBoxHeight, int(heightM*pixelsPerMeter)),
	}
}

// ============================================================
// Drawing helpers
// ============================================================

func (b Box) bounds() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width+1, b.Y+b.Height+1)
}

func fillBox(dst *image.NRGBA, b Box, c color.NRGBA) {
	r := b.bounds().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}

func strokeBox(dst *image.NRGBA, b Box, c color.NRGBA) {
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height

	// SetNRGBA молча игнорирует точки вне холста
	for x := x0; x <= x1; x++ {
		dst.SetNRGBA(x, y0, c)
		dst.SetNRGBA(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		dst.SetNRGBA(x0, y, c)
		dst.SetNRGBA(x1, y, c)
	}
}

// drawLines выводит строки так, что (x, y) задаёт верхний левый угол первой строки.
func (c *Compositor) drawLines(dst *image.NRGBA, x, y int, lines []string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.style.Text),
		Face: c.face,
	}
	step := c.face.Height + labelLineSpacing
	for i, line := range lines {
		d.Dot = fixed.P(x, y+c.face.Ascent+i*step)
		d.DrawString(line)
	}
}

// labelBounds возвращает прямоугольник, занятый подписью из drawLines.
func (c *Compositor) labelBounds(x, y int, lines []string) image.Rectangle {
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(c.face, line).Ceil())
	}
	step := c.face.Height + labelLineSpacing
	return image.Rect(x, y, x+width, y+len(lines)*step)
}

// formatRotation печатает целые градусы с одним знаком после точки: "90.0°".
func formatRotation(deg float64) string {
	if deg == math.Trunc(deg) && !math.IsInf(deg, 0) {
		return strconv.FormatFloat(deg, 'f', 1, 64) + "°"
	}
	return strconv.FormatFloat(deg, 'f', -1, 64) + "°"
}
