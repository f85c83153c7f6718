package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, p int, progress ...color.Color) string {
	t.Helper()
	f, err := gauge.Render(gauge.State{
		Percentage: p,
		Config:     gauge.NewConfig(progress, colors.Green),
	})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f))
	return buf.String()
}

func TestEncodeWellFormed(t *testing.T) {
	out := encode(t, 50, colors.Blue, colors.Red)
	d := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="240" height="240"`))
}

func TestEncodeElements(t *testing.T) {
	out := encode(t, 50, colors.Blue, colors.Red)
	assert.Equal(t, 2, strings.Count(out, "<path "), "track and progress arcs")
	assert.Equal(t, 2, strings.Count(out, "<circle "), "glow and hub")
	assert.Equal(t, 1, strings.Count(out, "<polygon "))
	assert.Contains(t, out, `<linearGradient id="g1" gradientUnits="userSpaceOnUse" x1="30" y1="0" x2="250" y2="0">`)
	assert.Contains(t, out, `<radialGradient id="g2" gradientUnits="userSpaceOnUse" cx="120" cy="120" r="120">`)
	assert.Contains(t, out, `stroke="url(#g1)"`)
	assert.Contains(t, out, `stop-color="#00ff00" stop-opacity="0.2"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	assert.Contains(t, out, `font-weight="bold" fill="#ffffff" text-anchor="middle" dominant-baseline="central">50 %</text>`)
	assert.Contains(t, out, `fill="#b0b4cd" text-anchor="middle" dominant-baseline="central">Percentage</text>`)
}

func TestEncodeZeroProgress(t *testing.T) {
	out := encode(t, 0, colors.Blue, colors.Red)
	assert.Equal(t, 1, strings.Count(out, "<path "), "zero sweep arc is left out")
}

func TestEncodeSolidProgress(t *testing.T) {
	out := encode(t, 100, colors.Red)
	assert.NotContains(t, out, "linearGradient")
	assert.Contains(t, out, `stroke="#ff0000"`)
}

func TestEncodeEscapesText(t *testing.T) {
	cfg := gauge.NewConfig([]color.Color{colors.Blue}, colors.Green)
	cfg.CaptionText = "<Load & Go>"
	f, err := gauge.Render(gauge.State{Percentage: 10, Config: cfg})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f))
	assert.Contains(t, buf.String(), "&lt;Load &amp; Go&gt;")
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"0\" height=\"0\" viewBox=\"0 0 0 0\">\n</svg>\n", buf.String())
}

func TestArcPath(t *testing.T) {
	a := gauge.Arc{Bounds: gauge.Rect{X: 0, Y: 0, W: 200, H: 200}, StartAngle: 0, SweepAngle: 90}
	assert.Equal(t, "M200 100 A100 100 0 0 1 100 200", arcPath(a))

	a.SweepAngle = 240
	assert.Equal(t, 2, strings.Count(arcPath(a), " A"))
}

func TestArcPathFoldsStartAngle(t *testing.T) {
	a := gauge.Arc{Bounds: gauge.Rect{X: 0, Y: 0, W: 200, H: 200}, StartAngle: 450, SweepAngle: 90}
	assert.Equal(t, "M100 200 A100 100 0 0 1 0 100", arcPath(a))

	a.StartAngle = -270
	assert.Equal(t, "M100 200 A100 100 0 0 1 0 100", arcPath(a))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "114.833", num(240/2.09))
	assert.Equal(t, "12", num(12))
}
