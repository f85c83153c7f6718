package gauge

import (
	"math"

	"github.com/roffe/speedometer/pkg/common"
)

const (
	MinPercentage = 0
	MaxPercentage = 100

	// ArcInset shrinks the arc diameter relative to the canvas height so
	// the stroke is not clipped.
	ArcInset = 20
	// ArcCorrection shifts the arc box horizontally.
	ArcCorrection = 60
	HubRadius     = 24
	GlowAlpha     = common.OneFifth
	LabelPadding  = 5

	PercentageLineHeight = 28
	CaptionLineHeight    = 24
)

// DefaultPivotDivisor places the hub and needle pivot at height/2.09, a
// little above the true center.
const DefaultPivotDivisor = 2.09

// Clamp limits percentage to [0, 100].
func Clamp(percentage int) int {
	return max(MinPercentage, min(MaxPercentage, percentage))
}

// FillSweep returns the progress arc span in degrees.
func FillSweep(percentage int, sweepAngle float64) float64 {
	return (float64(Clamp(percentage)) / 100) * sweepAngle
}

// NeedleAngle returns the needle direction in degrees. It is not folded
// into [0, 360).
func NeedleAngle(percentage int, startAngle, sweepAngle float64) float64 {
	return FillSweep(percentage, sweepAngle) + startAngle
}

// ArcBounds returns the square box both arcs are inscribed in.
func ArcBounds(width, height float64) Rect {
	d := math.Max(height-ArcInset, 0)
	return Rect{
		X: (width - height + ArcCorrection) / 2,
		Y: (height - d) / 2,
		W: d,
		H: d,
	}
}

// PivotCenter returns the hub / needle pivot for a canvas.
func PivotCenter(width, height, divisor float64) Point {
	if divisor <= 0 {
		divisor = DefaultPivotDivisor
	}
	return Point{X: width * common.OneHalf, Y: height / divisor}
}

// Polar returns the point at radius and angle (degrees) from center.
func Polar(center Point, radius, angle float64) Point {
	s, c := math.Sincos(common.Radians(angle))
	return Point{X: center.X + radius*c, Y: center.Y + radius*s}
}

// Needle returns the tip and the two base vertices of the needle triangle.
func Needle(center Point, angle, length, baseWidth float64) [3]Point {
	return [3]Point{
		Polar(center, length, angle),
		Polar(center, baseWidth, angle-common.Deg90),
		Polar(center, baseWidth, angle+common.Deg90),
	}
}
