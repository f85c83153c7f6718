package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	White       = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black       = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	Transparent = color.NRGBA{}
	Track       = color.NRGBA{0xE0, 0xE0, 0xE0, 0xFF}
	Caption     = color.NRGBA{0xB0, 0xB4, 0xCD, 0xFF}
	Blue        = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	Red         = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	Green       = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
)

// ToNRGBA converts any color to non-premultiplied 8-bit RGBA. A nil color
// converts to Transparent.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return Transparent
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithAlpha returns c with its alpha channel replaced by a (0..1).
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := ToNRGBA(c)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	n.A = uint8(a*255 + 0.5)
	return n
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.NRGBA, error) {
	var alpha uint8 = 0xFF
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Transparent, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	n := ToNRGBA(c)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}

// Opacity returns the alpha channel of c as 0..1.
func Opacity(c color.Color) float64 {
	return float64(ToNRGBA(c).A) / 255
}
