package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ============================================================
// Overlay Style
// ============================================================

type Style struct {
	Fill    color.NRGBA
	Outline color.NRGBA
	Text    color.NRGBA
}

// DefaultStyle: полупрозрачная белая заливка, тёмная рамка, чёрный текст.
func DefaultStyle() Style {
	return Style{
		Fill:    color.NRGBA{R: 255, G: 255, B: 255, A: 120},
		Outline: color.NRGBA{R: 0, G: 0, B: 0, A: 200},
		Text:    color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// ParseStyle собирает стиль из hex цветов вида "#rrggbb" или "#rgb".
// Текст всегда непрозрачный.
func ParseStyle(fill string, fillAlpha uint8, outline string, outlineAlpha uint8, text string) (Style, error) {
	fillColor, err := parseHex(fill, fillAlpha)
	if err != nil {
		return Style{}, fmt.Errorf("fill: %w", err)
	}
	outlineColor, err := parseHex(outline, outlineAlpha)
	if err != nil {
		return Style{}, fmt.Errorf("outline: %w", err)
	}
	textColor, err := parseHex(text, 255)
	if err != nil {
		return Style{}, fmt.Errorf("text: %w", err)
	}
	return Style{Fill: fillColor, Outline: outlineColor, Text: textColor}, nil
}

func parseHex(hex string, alpha uint8) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
