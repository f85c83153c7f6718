package gauge

import (
	"image/color"
	"math"
	"strconv"

	"github.com/roffe/speedometer/pkg/colors"
)

// Render draws s on a Diameter x Diameter canvas.
func Render(s State) (*Frame, error) {
	d := orPositive(s.Diameter, DefaultDiameter)
	return RenderSize(s, d, d)
}

// RenderSize produces the draw commands for s on a width x height canvas.
// It fails with ErrInvalidConfiguration before producing anything when the
// config is unusable. A non-positive canvas yields an empty frame.
func RenderSize(s State, width, height float64) (*Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cfg := s.resolved()
	p := Clamp(s.Percentage)

	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return &Frame{Percentage: p}, nil
	}

	f := &Frame{
		Width:      width,
		Height:     height,
		Percentage: p,
		Commands:   make([]Command, 0, 7),
	}

	bounds := ArcBounds(width, height)
	f.Commands = append(f.Commands,
		Arc{
			Bounds:     bounds,
			StartAngle: cfg.StartAngle,
			SweepAngle: cfg.SweepAngle,
			Width:      cfg.TrackWidth,
			Cap:        CapRound,
			Brush:      Solid{Color: cfg.TrackColor},
		},
		Arc{
			Bounds:     bounds,
			StartAngle: cfg.StartAngle,
			SweepAngle: FillSweep(p, cfg.SweepAngle),
			Width:      cfg.ProgressWidth,
			Cap:        CapRound,
			Brush:      progressBrush(cfg.ProgressColors, bounds),
		},
	)

	glow := colors.Transparent
	if cfg.InnerGlowColor != nil {
		glow = colors.WithAlpha(cfg.InnerGlowColor, GlowAlpha)
	}
	glowCenter := Point{X: width / 2, Y: height / 2}
	f.Commands = append(f.Commands, Circle{
		Center: glowCenter,
		Radius: width / 2,
		Brush: RadialGradient{
			Center: glowCenter,
			Radius: width / 2,
			Colors: []color.Color{glow, colors.Transparent},
		},
	})

	pivot := PivotCenter(width, height, cfg.PivotDivisor)
	f.Commands = append(f.Commands, Circle{
		Center: pivot,
		Radius: HubRadius,
		Brush:  Solid{Color: cfg.HubColor},
	})

	needle := Needle(pivot, NeedleAngle(p, cfg.StartAngle, cfg.SweepAngle), cfg.NeedleLength, cfg.NeedleBaseWidth)
	f.Commands = append(f.Commands, Polygon{
		Points: needle[:],
		Brush:  Solid{Color: cfg.NeedleColor},
	})

	label := PercentageLabel(p)
	if cfg.RawLabel {
		label = strconv.Itoa(s.Percentage) + " %"
	}
	captionTop := height - LabelPadding - CaptionLineHeight
	f.Commands = append(f.Commands,
		Text{
			Text:       label,
			X:          width / 2,
			Top:        captionTop - PercentageLineHeight,
			LineHeight: PercentageLineHeight,
			Size:       cfg.PercentageTextSize,
			Bold:       !cfg.PlainLabel,
			Color:      cfg.PercentageTextColor,
		},
		Text{
			Text:       cfg.CaptionText,
			X:          width / 2,
			Top:        captionTop,
			LineHeight: CaptionLineHeight,
			Size:       cfg.CaptionTextSize,
			Color:      cfg.CaptionColor,
		},
	)
	return f, nil
}

// PercentageLabel formats the value shown under the gauge, e.g. "75 %".
func PercentageLabel(percentage int) string {
	return strconv.Itoa(Clamp(percentage)) + " %"
}

func progressBrush(stops []color.Color, bounds Rect) Brush {
	if len(stops) == 1 {
		return Solid{Color: stops[0]}
	}
	return LinearGradient{
		X0:     bounds.X,
		X1:     bounds.X + bounds.W,
		Colors: stops,
	}
}
