package presets

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPresets(t *testing.T) {
	names := Names()
	for _, want := range []string{Percentage, Protection, colors.Normal, colors.Universal} {
		assert.Contains(t, names, want)
	}

	cfg, err := Get(Percentage)
	require.NoError(t, err)
	assert.Equal(t, []color.Color{color.NRGBA{0, 0, 0xFF, 0xFF}, color.NRGBA{0xFF, 0, 0, 0xFF}}, cfg.ProgressColors)
	assert.Equal(t, color.NRGBA{0, 0xFF, 0, 0xFF}, cfg.InnerGlowColor)
	assert.EqualValues(t, gauge.DefaultStartAngle, cfg.StartAngle)
	assert.EqualValues(t, gauge.DefaultDiameter, cfg.Diameter)

	cfg, err = Get(Protection)
	require.NoError(t, err)
	assert.EqualValues(t, gauge.ProtectionDiameter, cfg.Diameter)
	assert.True(t, cfg.RawLabel)
	assert.True(t, cfg.PlainLabel)

	cfg, err = Get(colors.Tritanopia)
	require.NoError(t, err)
	assert.Len(t, cfg.ProgressColors, 3)
}

func TestSetDelete(t *testing.T) {
	assert.Error(t, Set(Percentage, Style{ProgressColors: []string{"#FFFFFF"}}))
	assert.Error(t, Set("protection", Style{ProgressColors: []string{"#FFFFFF"}}))
	assert.Error(t, Delete(Protection))

	err := Set("broken", Style{})
	assert.True(t, errors.Is(err, gauge.ErrInvalidConfiguration), "got %v", err)

	require.NoError(t, Set("mine", Style{ProgressColors: []string{"#112233"}}))
	t.Cleanup(func() { Delete("mine") })
	cfg, err := Get("mine")
	require.NoError(t, err)
	assert.Equal(t, []color.Color{color.NRGBA{0x11, 0x22, 0x33, 0xFF}}, cfg.ProgressColors)

	require.NoError(t, Delete("mine"))
	_, err = Get("mine")
	assert.Error(t, err)
}

func TestLoadSave(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	prefs := a.Preferences()

	require.NoError(t, Load(prefs))

	require.NoError(t, Set("saved", Style{ProgressColors: []string{"#010203", "#040506"}, Caption: "Load"}))
	require.NoError(t, Save(prefs))
	require.NoError(t, Delete("saved"))
	assert.NotContains(t, Names(), "saved")

	require.NoError(t, Load(prefs))
	t.Cleanup(func() { Delete("saved") })
	cfg, err := Get("saved")
	require.NoError(t, err)
	assert.Equal(t, "Load", cfg.CaptionText)
	assert.Len(t, cfg.ProgressColors, 2)

	prefs.SetString(prefsKey, "{not json")
	assert.Error(t, Load(prefs))
}

const styleTOML = `
track_color = "#202020"
progress_colors = ["#00FF00", "#FFFF00", "#FF0000"]
inner_glow_color = "#FF000080"
diameter = 300.0
start_angle = 0.0
sweep_angle = 180.0
pivot_divisor = 2.0
caption = "Load"
`

func TestDecode(t *testing.T) {
	style, err := Decode(styleTOML)
	require.NoError(t, err)
	cfg, err := style.Config()
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{0x20, 0x20, 0x20, 0xFF}, cfg.TrackColor)
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0x80}, cfg.InnerGlowColor)
	assert.Len(t, cfg.ProgressColors, 3)
	assert.EqualValues(t, 300, cfg.Diameter)
	assert.EqualValues(t, 0, cfg.StartAngle)
	assert.EqualValues(t, 180, cfg.SweepAngle)
	assert.EqualValues(t, 2, cfg.PivotDivisor)
	assert.Equal(t, "Load", cfg.CaptionText)
	assert.EqualValues(t, gauge.DefaultTrackWidth, cfg.TrackWidth)
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "gauge.toml")
	require.NoError(t, os.WriteFile(filename, []byte(styleTOML), 0o644))
	style, err := LoadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "Load", style.Caption)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestBadColor(t *testing.T) {
	_, err := Style{ProgressColors: []string{"#GG0000"}}.Config()
	assert.ErrorContains(t, err, "progress_colors[0]")

	_, err = Style{ProgressColors: []string{"#000000"}, HubColor: "white"}.Config()
	assert.ErrorContains(t, err, "hub_color")
}

func TestNonFiniteGeometry(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"inf needle", "needle_length = inf"},
		{"-inf track", "track_width = -inf"},
		{"nan sweep", "sweep_angle = nan"},
		{"nan start", "start_angle = nan"},
		{"inf diameter", "diameter = +inf"},
		{"nan divisor", "pivot_divisor = nan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, err := Decode("progress_colors = [\"#0000FF\"]\n" + tt.toml + "\n")
			require.NoError(t, err)
			cfg, err := style.Config()
			require.NoError(t, err)
			assert.Equal(t, float64(gauge.DefaultNeedleLength), cfg.NeedleLength)
			assert.Equal(t, float64(gauge.DefaultTrackWidth), cfg.TrackWidth)
			assert.Equal(t, float64(gauge.DefaultSweepAngle), cfg.SweepAngle)
			assert.Equal(t, float64(gauge.DefaultStartAngle), cfg.StartAngle)
			assert.Equal(t, float64(gauge.DefaultDiameter), cfg.Diameter)
			assert.Equal(t, gauge.DefaultPivotDivisor, cfg.PivotDivisor)
		})
	}
}

func TestFromConfigRoundTrip(t *testing.T) {
	cfg := gauge.NewConfig([]color.Color{colors.Blue, colors.WithAlpha(colors.Red, 0.5)}, colors.Green)
	cfg.StartAngle = 0
	cfg.PlainLabel = true
	back, err := FromConfig(cfg).Config()
	require.NoError(t, err)
	assert.True(t, back.PlainLabel)
	assert.False(t, back.RawLabel)
	assert.Equal(t, cfg.StartAngle, back.StartAngle)
	assert.Equal(t, colors.ToNRGBA(cfg.ProgressColors[1]), colors.ToNRGBA(back.ProgressColors[1]))
	assert.Equal(t, colors.ToNRGBA(cfg.TrackColor), colors.ToNRGBA(back.TrackColor))
}
