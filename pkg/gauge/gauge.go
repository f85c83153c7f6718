package gauge

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/roffe/speedometer/pkg/colors"
)

var ErrInvalidConfiguration = errors.New("invalid gauge configuration")

const (
	DefaultDiameter           = 240
	DefaultTrackWidth         = 50
	DefaultProgressWidth      = 50
	DefaultNeedleLength       = 160
	DefaultNeedleBaseWidth    = 10
	DefaultStartAngle         = 150
	DefaultSweepAngle         = 240
	DefaultPercentageTextSize = 20
	DefaultCaptionTextSize    = 16
	DefaultCaption            = "Percentage"
)

// Config is the style of a gauge. Colors are passed through to the draw
// commands untouched, except InnerGlowColor which gets GlowAlpha applied.
//
// Zero values of the size, width and color fields are replaced by their
// defaults at render time. StartAngle is always used as given; use
// NewConfig to get the 150° default.
type Config struct {
	TrackColor          color.Color
	ProgressColors      []color.Color
	InnerGlowColor      color.Color
	PercentageTextColor color.Color
	CaptionColor        color.Color
	NeedleColor         color.Color
	HubColor            color.Color

	Diameter        float64
	TrackWidth      float64
	ProgressWidth   float64
	NeedleLength    float64
	NeedleBaseWidth float64
	StartAngle      float64
	SweepAngle      float64
	PivotDivisor    float64

	CaptionText        string
	PercentageTextSize float64
	CaptionTextSize    float64

	// RawLabel shows the percentage as passed in instead of the clamped
	// value. The drawing itself always uses the clamped value.
	RawLabel bool
	// PlainLabel draws the percentage in regular weight instead of bold.
	PlainLabel bool
}

// State is everything a single render depends on.
type State struct {
	Percentage int
	Config
}

func NewConfig(progressColors []color.Color, innerGlow color.Color) Config {
	return Config{
		TrackColor:          colors.Track,
		ProgressColors:      progressColors,
		InnerGlowColor:      innerGlow,
		PercentageTextColor: colors.White,
		CaptionColor:        colors.Caption,
		NeedleColor:         colors.White,
		HubColor:            colors.White,
		Diameter:            DefaultDiameter,
		TrackWidth:          DefaultTrackWidth,
		ProgressWidth:       DefaultProgressWidth,
		NeedleLength:        DefaultNeedleLength,
		NeedleBaseWidth:     DefaultNeedleBaseWidth,
		StartAngle:          DefaultStartAngle,
		SweepAngle:          DefaultSweepAngle,
		PivotDivisor:        DefaultPivotDivisor,
		CaptionText:         DefaultCaption,
		PercentageTextSize:  DefaultPercentageTextSize,
		CaptionTextSize:     DefaultCaptionTextSize,
	}
}

// Validate reports ErrInvalidConfiguration when the config can not be
// rendered.
func (c Config) Validate() error {
	if len(c.ProgressColors) == 0 {
		return fmt.Errorf("%w: at least one progress color is required", ErrInvalidConfiguration)
	}
	for i, col := range c.ProgressColors {
		if col == nil {
			return fmt.Errorf("%w: progress color %d is nil", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// resolved returns a copy of c with defaults filled in.
func (c Config) resolved() Config {
	c.TrackColor = orColor(c.TrackColor, colors.Track)
	c.PercentageTextColor = orColor(c.PercentageTextColor, colors.White)
	c.CaptionColor = orColor(c.CaptionColor, colors.Caption)
	c.NeedleColor = orColor(c.NeedleColor, colors.White)
	c.HubColor = orColor(c.HubColor, colors.White)

	c.Diameter = orPositive(c.Diameter, DefaultDiameter)
	c.TrackWidth = orPositive(c.TrackWidth, DefaultTrackWidth)
	c.ProgressWidth = orPositive(c.ProgressWidth, DefaultProgressWidth)
	c.NeedleLength = orPositive(c.NeedleLength, DefaultNeedleLength)
	c.NeedleBaseWidth = orPositive(c.NeedleBaseWidth, DefaultNeedleBaseWidth)
	c.PivotDivisor = orPositive(c.PivotDivisor, DefaultPivotDivisor)
	c.PercentageTextSize = orPositive(c.PercentageTextSize, DefaultPercentageTextSize)
	c.CaptionTextSize = orPositive(c.CaptionTextSize, DefaultCaptionTextSize)
	if c.SweepAngle == 0 || !finite(c.SweepAngle) {
		c.SweepAngle = DefaultSweepAngle
	}
	if !finite(c.StartAngle) {
		c.StartAngle = DefaultStartAngle
	}
	if c.CaptionText == "" {
		c.CaptionText = DefaultCaption
	}
	c.ProgressColors = append([]color.Color(nil), c.ProgressColors...)
	return c
}

func orColor(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

// orPositive returns def unless v is a positive finite number.
func orPositive(v, def float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return def
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
