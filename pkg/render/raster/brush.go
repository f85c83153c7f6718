package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/gauge"
)

// infinite bounds for gradient sources
var everywhere = image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)

// brushImage returns an image usable as a draw source for b, with gradient
// geometry converted to device pixels.
func brushImage(b gauge.Brush, scale float64) image.Image {
	switch b := b.(type) {
	case gauge.Solid:
		if b.Color == nil {
			return nil
		}
		return image.NewUniform(b.Color)
	case gauge.LinearGradient:
		if len(b.Colors) == 0 {
			return nil
		}
		return &linearGradient{x0: b.X0 * scale, x1: b.X1 * scale, stops: b.Colors}
	case gauge.RadialGradient:
		if len(b.Colors) == 0 {
			return nil
		}
		return &radialGradient{
			cx:    b.Center.X * scale,
			cy:    b.Center.Y * scale,
			r:     b.Radius * scale,
			stops: b.Colors,
		}
	}
	return nil
}

type linearGradient struct {
	x0, x1 float64
	stops  []color.Color
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *linearGradient) Bounds() image.Rectangle { return everywhere }

func (g *linearGradient) At(x, _ int) color.Color {
	span := g.x1 - g.x0
	if span == 0 {
		return colors.Interpolate(g.stops, 0)
	}
	return colors.Interpolate(g.stops, (float64(x)+0.5-g.x0)/span)
}

type radialGradient struct {
	cx, cy, r float64
	stops     []color.Color
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *radialGradient) Bounds() image.Rectangle { return everywhere }

func (g *radialGradient) At(x, y int) color.Color {
	if g.r <= 0 {
		return colors.Interpolate(g.stops, 1)
	}
	d := math.Hypot(float64(x)+0.5-g.cx, float64(y)+0.5-g.cy)
	return colors.Interpolate(g.stops, d/g.r)
}
