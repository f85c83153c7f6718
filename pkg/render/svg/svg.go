// Package svg writes gauge frames as standalone SVG documents.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/common"
	"github.com/roffe/speedometer/pkg/gauge"
)

const FontFamily = "Go, Roboto, sans-serif"

// Encode writes f as an SVG document sized Width x Height user units.
func Encode(w io.Writer, f *gauge.Frame) error {
	e := &encoder{w: bufio.NewWriter(w)}
	var width, height float64
	if f != nil {
		width, height = f.Width, f.Height
	}
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	if f != nil {
		for i, cmd := range f.Commands {
			if err := e.command(i, cmd); err != nil {
				return err
			}
		}
	}
	e.printf("</svg>\n")
	if e.err != nil {
		return fmt.Errorf("write svg: %w", e.err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) command(i int, cmd gauge.Command) error {
	switch c := cmd.(type) {
	case gauge.Arc:
		if c.SweepAngle == 0 || c.Bounds.Radius() <= 0 || c.Width <= 0 {
			return nil
		}
		paint := e.brush(i, c.Brush)
		capStyle := "butt"
		if c.Cap == gauge.CapRound {
			capStyle = "round"
		}
		e.printf(`  <path d="%s" fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="%s"/>`+"\n",
			arcPath(c), paint.ref, paint.opacity("stroke"), num(c.Width), capStyle)
	case gauge.Circle:
		if c.Radius <= 0 {
			return nil
		}
		paint := e.brush(i, c.Brush)
		e.printf(`  <circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
			num(c.Center.X), num(c.Center.Y), num(c.Radius), paint.ref, paint.opacity("fill"))
	case gauge.Polygon:
		if len(c.Points) < 3 {
			return nil
		}
		paint := e.brush(i, c.Brush)
		pts := make([]string, len(c.Points))
		for j, p := range c.Points {
			pts[j] = num(p.X) + "," + num(p.Y)
		}
		e.printf(`  <polygon points="%s" fill="%s"%s/>`+"\n", strings.Join(pts, " "), paint.ref, paint.opacity("fill"))
	case gauge.Text:
		if c.Text == "" || c.Color == nil {
			return nil
		}
		weight := "normal"
		if c.Bold {
			weight = "bold"
		}
		var esc strings.Builder
		if err := xml.EscapeText(&esc, []byte(c.Text)); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		e.printf(`  <text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s" fill="%s"%s text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			num(c.X), num(c.Top+c.LineHeight/2), FontFamily, num(c.Size), weight,
			colors.Hex(c.Color), opacityAttr("fill", c.Color), esc.String())
	default:
		return fmt.Errorf("command %d: unsupported type %T", i, cmd)
	}
	return nil
}

type paint struct {
	ref   string
	solid color.Color
}

func (p paint) opacity(attr string) string {
	if p.solid == nil {
		return ""
	}
	return opacityAttr(attr, p.solid)
}

// brush writes gradient definitions when needed and returns the paint
// reference for the shape.
func (e *encoder) brush(i int, b gauge.Brush) paint {
	id := "g" + strconv.Itoa(i)
	switch b := b.(type) {
	case gauge.Solid:
		if b.Color == nil {
			return paint{ref: "none"}
		}
		return paint{ref: colors.Hex(b.Color), solid: b.Color}
	case gauge.LinearGradient:
		e.printf(`  <defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="0" x2="%s" y2="0">`,
			id, num(b.X0), num(b.X1))
		e.stops(b.Colors)
		e.printf("</linearGradient></defs>\n")
	case gauge.RadialGradient:
		e.printf(`  <defs><radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			id, num(b.Center.X), num(b.Center.Y), num(b.Radius))
		e.stops(b.Colors)
		e.printf("</radialGradient></defs>\n")
	default:
		return paint{ref: "none"}
	}
	return paint{ref: "url(#" + id + ")"}
}

func (e *encoder) stops(cs []color.Color) {
	for j, c := range cs {
		offset := 0.0
		if len(cs) > 1 {
			offset = float64(j) / float64(len(cs)-1)
		}
		e.printf(`<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(offset), colors.Hex(c), num(colors.Opacity(c)))
	}
}

func opacityAttr(attr string, c color.Color) string {
	a := colors.Opacity(c)
	if a >= 1 {
		return ""
	}
	return " " + attr + `-opacity="` + num(a) + `"`
}

// arcPath builds the path data for an arc, split in two halves for full
// turns since a single SVG arc can not describe a closed circle.
func arcPath(a gauge.Arc) string {
	c, r := a.Bounds.Center(), a.Bounds.Radius()
	sweep := math.Max(-common.Deg360, math.Min(common.Deg360, a.SweepAngle))
	flag := 1
	if sweep < 0 {
		flag = 0
	}
	from := common.NormalizeDeg(a.StartAngle)
	start := gauge.Polar(c, r, from)
	var b strings.Builder
	b.WriteString("M" + num(start.X) + " " + num(start.Y))
	segments := 1
	if math.Abs(sweep) > 180 {
		segments = 2
	}
	for s := 1; s <= segments; s++ {
		p := gauge.Polar(c, r, from+sweep*float64(s)/float64(segments))
		fmt.Fprintf(&b, " A%s %s 0 0 %d %s %s", num(r), num(r), flag, num(p.X), num(p.Y))
	}
	return b.String()
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
