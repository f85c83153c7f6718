package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/roffe/speedometer/pkg/gauge"
)

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func capFunc(c gauge.Cap) rasterx.CapFunc {
	if c == gauge.CapRound {
		return rasterx.RoundCap
	}
	return rasterx.ButtCap
}

// stroke draws the open polyline pts with width w, both in logical units.
func (p *painter) stroke(pts []gauge.Point, w float64, c gauge.Cap, b gauge.Brush) {
	if len(pts) < 2 || !finite(w) || w*p.scale > maxCoord || !drawable(pts, p.scale) {
		return
	}
	src := brushImage(b, p.scale)
	if src == nil {
		return
	}
	if p.stroker == nil {
		sz := p.dst.Bounds().Size()
		scanner := rasterx.NewScannerGV(sz.X, sz.Y, p.dst, p.dst.Bounds())
		p.stroker = rasterx.NewStroker(sz.X, sz.Y, scanner)
	}
	s := p.stroker
	s.Clear()
	cf := capFunc(c)
	s.SetStroke(fixed.Int26_6(w*p.scale*64), 4<<6, cf, cf, rasterx.RoundGap, rasterx.Round)
	s.Start(toFixed(pts[0].X*p.scale, pts[0].Y*p.scale))
	for _, pt := range pts[1:] {
		s.Line(toFixed(pt.X*p.scale, pt.Y*p.scale))
	}
	s.Stop(false)
	if u, ok := src.(*image.Uniform); ok {
		s.SetColor(u.C)
	} else {
		s.SetColor(rasterx.ColorFunc(func(x, y int) color.Color {
			return src.At(x, y)
		}))
	}
	s.Draw()
	s.Clear()
}
