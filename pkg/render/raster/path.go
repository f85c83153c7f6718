package raster

import (
	"math"

	"github.com/roffe/speedometer/pkg/common"
	"github.com/roffe/speedometer/pkg/gauge"
)

// arcPoints appends points on the circle around c from angle from, sweeping
// by sweep degrees, both ends included.
func arcPoints(dst []gauge.Point, c gauge.Point, r, from, sweep float64) []gauge.Point {
	n := int(math.Ceil(math.Abs(sweep) / common.ArcStepDeg))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	for i := 0; i <= n; i++ {
		dst = append(dst, gauge.Polar(c, r, from+step*float64(i)))
	}
	return dst
}

func circleOutline(c gauge.Point, r float64) []gauge.Point {
	pts := arcPoints(nil, c, r, 0, common.Deg360)
	return pts[:len(pts)-1]
}
