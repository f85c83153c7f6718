package gauge

import (
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rect is an axis aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Radius of the circle inscribed in r. Arc boxes are always square.
func (r Rect) Radius() float64 { return math.Min(r.W, r.H) / 2 }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Brush describes how a shape is painted. It is one of Solid,
// LinearGradient or RadialGradient.
type Brush interface {
	brush()
}

type Solid struct {
	Color color.Color
}

// LinearGradient runs left to right from X0 to X1 with Colors evenly spaced.
// Outside that span the end colors extend.
type LinearGradient struct {
	X0, X1 float64
	Colors []color.Color
}

// RadialGradient runs from Center (first color) to Radius (last color).
type RadialGradient struct {
	Center Point
	Radius float64
	Colors []color.Color
}

func (Solid) brush()          {}
func (LinearGradient) brush() {}
func (RadialGradient) brush() {}

type Cap int

const (
	CapButt Cap = iota
	CapRound
)

// Command is a single drawing primitive. It is one of Arc, Circle, Polygon
// or Text.
type Command interface {
	command()
}

// Arc is a stroked circular arc inscribed in Bounds. Angles are in degrees,
// 0° along +x and increasing clockwise (y down).
type Arc struct {
	Bounds     Rect
	StartAngle float64
	SweepAngle float64
	Width      float64
	Cap        Cap
	Brush      Brush
}

type Circle struct {
	Center Point
	Radius float64
	Brush  Brush
}

// Polygon is a closed, filled path.
type Polygon struct {
	Points []Point
	Brush  Brush
}

// Text is a single line horizontally centered on X. Top and LineHeight
// describe the line box; backends center the glyphs vertically inside it.
type Text struct {
	Text       string
	X          float64
	Top        float64
	LineHeight float64
	Size       float64
	Bold       bool
	Color      color.Color
}

func (Arc) command()     {}
func (Circle) command()  {}
func (Polygon) command() {}
func (Text) command()    {}

// Frame is the result of a render: the canvas size, the effective
// percentage and the draw commands in painting order.
type Frame struct {
	Width      float64
	Height     float64
	Percentage int
	Commands   []Command
}

// Empty reports whether the frame has nothing to draw.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Commands) == 0
}
