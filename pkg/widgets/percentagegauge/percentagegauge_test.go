package percentagegauge

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/gauge"
)

func newGauge(t *testing.T) *PercentageGauge {
	t.Helper()
	g, err := New(gauge.NewConfig([]color.Color{colors.Blue, colors.Red}, colors.Green))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(gauge.NewConfig(nil, colors.Green)); !errors.Is(err, gauge.ErrInvalidConfiguration) {
		t.Errorf("New() error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestSetPercentage(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	g := newGauge(t)
	r := test.WidgetRenderer(g)
	r.Layout(fyne.NewSize(240, 240))

	tests := []struct {
		name  string
		set   func()
		want  int
		label string
	}{
		{name: "set", set: func() { g.SetPercentage(40) }, want: 40, label: "40 %"},
		{name: "clamp high", set: func() { g.SetPercentage(150) }, want: 100, label: "100 %"},
		{name: "clamp low", set: func() { g.SetPercentage(-3) }, want: 0, label: "0 %"},
		{name: "bus value", set: func() { g.SetValue(59.6) }, want: 60, label: "60 %"},
		{name: "bus +inf", set: func() { g.SetValue(math.Inf(1)) }, want: 100, label: "100 %"},
		{name: "bus -inf", set: func() { g.SetValue(math.Inf(-1)) }, want: 0, label: "0 %"},
		{name: "bus huge", set: func() { g.SetValue(1e300) }, want: 100, label: "100 %"},
		{name: "bus nan keeps value", set: func() { g.SetValue(math.NaN()) }, want: 100, label: "100 %"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			if got := g.Percentage(); got != tt.want {
				t.Errorf("Percentage() = %d, want %d", got, tt.want)
			}
			if g.valueText.Text != tt.label {
				t.Errorf("label = %q, want %q", g.valueText.Text, tt.label)
			}
		})
	}
	if g.captionText.Text != "Percentage" {
		t.Errorf("caption = %q", g.captionText.Text)
	}
	if g.captionText.Position().Y != 211 {
		t.Errorf("caption top = %v, want 211", g.captionText.Position().Y)
	}
}

func TestMinSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	g := newGauge(t)
	if got := test.WidgetRenderer(g).MinSize(); got != fyne.NewSize(240, 240) {
		t.Errorf("MinSize() = %v", got)
	}
	cfg := gauge.ProtectionConfig([]color.Color{colors.Blue}, colors.Green)
	if err := g.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}
	if got := test.WidgetRenderer(g).MinSize(); got != fyne.NewSize(196, 196) {
		t.Errorf("MinSize() after SetConfig = %v", got)
	}
	if err := g.SetConfig(gauge.Config{}); !errors.Is(err, gauge.ErrInvalidConfiguration) {
		t.Errorf("SetConfig() error = %v", err)
	}
}

func TestDrawCached(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	g := newGauge(t)
	test.WidgetRenderer(g).Layout(fyne.NewSize(240, 240))

	img := g.draw(480, 480)
	if got := img.Bounds().Size(); got.X != 480 || got.Y != 480 {
		t.Fatalf("draw() size = %v, want 480x480", got)
	}
	if again := g.draw(480, 480); again != img {
		t.Error("second draw() at the same size should come from the cache")
	}
	g.SetPercentage(70)
	if other := g.draw(480, 480); other == img {
		t.Error("draw() after SetPercentage returned the stale image")
	}
}

func TestDrawRacingSetConfig(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	g := newGauge(t)
	test.WidgetRenderer(g).Layout(fyne.NewSize(240, 240))

	// a raster pass that took its snapshot before the config changed
	stale := g.snapshot()
	if err := g.SetConfig(gauge.NewConfig([]color.Color{colors.Green}, colors.Red)); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}
	old := g.drawSnapshot(stale, 240, 240)

	fresh := g.draw(240, 240)
	if fresh == old {
		t.Fatal("draw() after SetConfig served the face rendered with the old config")
	}
	if again := g.draw(240, 240); again != fresh {
		t.Error("second draw() should come from the cache")
	}
}
