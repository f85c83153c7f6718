// Package raster paints gauge frames into RGBA images.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/vector"

	"github.com/roffe/speedometer/pkg/common"
	"github.com/roffe/speedometer/pkg/gauge"
)

type Options struct {
	// Scale is the number of device pixels per logical unit, 0 means 1.
	Scale float64
	// Background fills the image before drawing, nil leaves it transparent.
	Background color.Color
	// SkipText leaves the labels out, for hosts that draw text natively.
	SkipText bool
}

func (o Options) scale() float64 {
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return 1
	}
	return o.Scale
}

// Size returns the pixel size of f drawn with opts.
func Size(f *gauge.Frame, opts Options) image.Point {
	if f == nil || !(f.Width > 0 && f.Height > 0) {
		return image.Point{}
	}
	s := opts.scale()
	return image.Point{
		X: int(math.Ceil(f.Width * s)),
		Y: int(math.Ceil(f.Height * s)),
	}
}

// Draw paints f into a new image. Commands are painted in order with
// source-over compositing.
func Draw(f *gauge.Frame, opts Options) (*image.RGBA, error) {
	size := Size(f, opts)
	img := image.NewRGBA(image.Rectangle{Max: size})
	if size.X == 0 || size.Y == 0 {
		return img, nil
	}
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	p := &painter{
		dst:   img,
		scale: opts.scale(),
		z:     vector.NewRasterizer(size.X, size.Y),
	}
	for i, cmd := range f.Commands {
		switch c := cmd.(type) {
		case gauge.Arc:
			p.arc(c)
		case gauge.Circle:
			p.circle(c)
		case gauge.Polygon:
			p.fill(c.Points, c.Brush)
		case gauge.Text:
			if opts.SkipText {
				continue
			}
			if err := p.text(c); err != nil {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("command %d: unsupported type %T", i, cmd)
		}
	}
	return img, nil
}

// EncodePNG draws f and writes it as PNG.
func EncodePNG(w io.Writer, f *gauge.Frame, opts Options) error {
	img, err := Draw(f, opts)
	if err != nil {
		return err
	}
	buff := bytes.NewBuffer(nil)
	if err := png.Encode(buff, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if _, err := w.Write(buff.Bytes()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

type painter struct {
	dst     *image.RGBA
	scale   float64
	z       *vector.Rasterizer
	stroker *rasterx.Stroker
}

func (p *painter) arc(a gauge.Arc) {
	r := a.Bounds.Radius()
	if !finite(a.SweepAngle) || !finite(a.StartAngle) || a.SweepAngle == 0 || !(r > 0) || !(a.Width > 0) {
		return
	}
	sweep := math.Max(-common.Deg360, math.Min(common.Deg360, a.SweepAngle))
	p.stroke(arcPoints(nil, a.Bounds.Center(), r, common.NormalizeDeg(a.StartAngle), sweep), a.Width, a.Cap, a.Brush)
}

func (p *painter) circle(c gauge.Circle) {
	if !(c.Radius > 0) || !finite(c.Radius) {
		return
	}
	p.fill(circleOutline(c.Center, c.Radius), c.Brush)
}

// fill rasterizes the closed polygon pts, given in logical units.
func (p *painter) fill(pts []gauge.Point, b gauge.Brush) {
	if len(pts) < 3 || !drawable(pts, p.scale) {
		return
	}
	src := brushImage(b, p.scale)
	if src == nil {
		return
	}
	sz := p.dst.Bounds().Size()
	p.z.Reset(sz.X, sz.Y)
	p.z.MoveTo(float32(pts[0].X*p.scale), float32(pts[0].Y*p.scale))
	for _, pt := range pts[1:] {
		p.z.LineTo(float32(pt.X*p.scale), float32(pt.Y*p.scale))
	}
	p.z.ClosePath()
	p.z.Draw(p.dst, p.dst.Bounds(), src, image.Point{})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// maxCoord bounds device coordinates so they survive float32 and 26.6
// fixed point conversion.
const maxCoord = 1 << 20

// drawable reports whether every point, scaled to device pixels, can be
// handed to a rasterizer.
func drawable(pts []gauge.Point, scale float64) bool {
	for _, pt := range pts {
		x, y := pt.X*scale, pt.Y*scale
		if !finite(x) || !finite(y) || math.Abs(x) > maxCoord || math.Abs(y) > maxCoord {
			return false
		}
	}
	return true
}
