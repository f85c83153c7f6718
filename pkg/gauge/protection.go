package gauge

import (
	"image/color"

	"github.com/roffe/speedometer/pkg/colors"
)

const ProtectionDiameter = 196

// ProtectionConfig is the fixed "protection meter" style: a 196 unit gauge
// with a light gray track and white needle, hub and text. Its label shows
// the unclamped input in regular weight.
func ProtectionConfig(progressColors []color.Color, innerGlow color.Color) Config {
	cfg := NewConfig(progressColors, innerGlow)
	cfg.Diameter = ProtectionDiameter
	cfg.TrackColor = colors.Track
	cfg.RawLabel = true
	cfg.PlainLabel = true
	return cfg
}

// ProtectionMeter renders the protection meter style for percentage.
func ProtectionMeter(percentage int, progressColors []color.Color, innerGlow color.Color) (*Frame, error) {
	return Render(State{
		Percentage: percentage,
		Config:     ProtectionConfig(progressColors, innerGlow),
	})
}
