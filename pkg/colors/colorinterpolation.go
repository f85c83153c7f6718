package colors

import (
	"image/color"
	"math"
	"strings"
)

type ColorBlindMode int

var SupportedColorBlindModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        ColorBlindMode = iota // Green → Yellow → Red
	ModeUniversal                           // Blue → Gray → Orange
	ModeProtanopia                          // Blue → White → Brown
	ModeTritanopia                          // Teal → Gray → Red
	ModeDeuteranomaly                       // Blue → Beige → Brown
)

func (m ColorBlindMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToColorBlindMode(s string) ColorBlindMode {
	switch {
	case strings.EqualFold(s, Universal):
		return ModeUniversal
	case strings.EqualFold(s, Protanopia):
		return ModeProtanopia
	case strings.EqualFold(s, Tritanopia):
		return ModeTritanopia
	case strings.EqualFold(s, Deuteranomaly):
		return ModeDeuteranomaly
	default:
		return ModeNormal
	}
}

// Palette returns the low, mid and high stops for mode. The result is a
// fresh slice and can be used directly as a progress gradient.
func Palette(mode ColorBlindMode) []color.Color {
	switch mode {
	case ModeUniversal:
		return []color.Color{
			color.NRGBA{33, 102, 172, 255},  // #2166AC
			color.NRGBA{247, 247, 247, 255}, // #F7F7F7
			color.NRGBA{255, 165, 0, 255},   // #FFA500
		}
	case ModeProtanopia:
		return []color.Color{
			color.NRGBA{5, 113, 176, 255},   // #0571B0
			color.NRGBA{247, 247, 247, 255}, // #F7F7F7
			color.NRGBA{150, 75, 0, 255},    // #964B00
		}
	case ModeTritanopia:
		return []color.Color{
			color.NRGBA{0, 128, 128, 255},   // #008080
			color.NRGBA{247, 247, 247, 255}, // #F7F7F7
			color.NRGBA{215, 48, 39, 255},   // #D73027
		}
	case ModeDeuteranomaly:
		return []color.Color{
			color.NRGBA{0x4A, 0x90, 0xE2, 255}, // #4A90E2
			color.NRGBA{0xF5, 0xE6, 0xB3, 255}, // #F5E6B3
			color.NRGBA{0x8B, 0x45, 0x13, 255}, // #8B4513
		}
	default:
		return []color.Color{
			color.NRGBA{0, 255, 0, 255},
			color.NRGBA{255, 255, 0, 255},
			color.NRGBA{255, 0, 0, 255},
		}
	}
}

// Interpolate returns the color at t (0..1) along evenly spaced stops.
// t outside 0..1 is clamped and a single stop is returned as-is.
func Interpolate(stops []color.Color, t float64) color.NRGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return ToNRGBA(stops[0])
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segments := float64(len(stops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(stops)-1 {
		return ToNRGBA(stops[len(stops)-1])
	}
	return lerpColor(ToNRGBA(stops[i]), ToNRGBA(stops[i+1]), pos-float64(i))
}

// lerp helper
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// linear interpolation between two colors, alpha included
func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(c1.R), float64(c2.R), t) + 0.5),
		G: uint8(lerp(float64(c1.G), float64(c2.G), t) + 0.5),
		B: uint8(lerp(float64(c1.B), float64(c2.B), t) + 0.5),
		A: uint8(lerp(float64(c1.A), float64(c2.A), t) + 0.5),
	}
}
