package main

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"

	"github.com/roffe/speedometer/pkg/capture"
	"github.com/roffe/speedometer/pkg/controller"
	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/roffe/speedometer/pkg/presets"
	"github.com/roffe/speedometer/pkg/widgets/percentagegauge"
)

const customPreset = "Custom"

type screen struct {
	app   fyne.App
	win   fyne.Window
	gauge *percentagegauge.PercentageGauge
	ctrl  *controller.Controller

	presetSelect *widget.Select
}

func newScreen(a fyne.App, w fyne.Window, g *percentagegauge.PercentageGauge, ctrl *controller.Controller, preset string) *screen {
	s := &screen{app: a, win: w, gauge: g, ctrl: ctrl}
	s.presetSelect = widget.NewSelect(presets.Names(), s.selectPreset)
	s.presetSelect.SetSelected(preset)
	return s
}

func (s *screen) layout() fyne.CanvasObject {
	decrease := widget.NewButton("Decrease percentage", func() { s.ctrl.Decrement() })
	increase := widget.NewButton("Increase percentage", func() { s.ctrl.Increment() })
	pick := widget.NewButton("Progress color", s.pickColor)
	snap := widget.NewButton("Capture", s.capture)
	shot := widget.NewButton("Screenshot", s.screenshot)

	return container.NewBorder(
		container.NewHBox(widget.NewLabel("Style"), s.presetSelect, layout.NewSpacer(), pick, snap, shot),
		container.NewCenter(container.NewHBox(decrease, increase)),
		nil,
		nil,
		container.NewCenter(s.gauge),
	)
}

func (s *screen) selectPreset(name string) {
	cfg, err := presets.Get(name)
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	if err := s.gauge.SetConfig(cfg); err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	s.app.Preferences().SetString(prefPreset, name)
}

// pickColor replaces the last progress color and stores the result as the
// custom preset.
func (s *screen) pickColor() {
	picker := colorpicker.New(200, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		cfg := s.gauge.State().Config
		stops := append([]color.Color(nil), cfg.ProgressColors...)
		stops[len(stops)-1] = c
		cfg.ProgressColors = stops
		if err := s.gauge.SetConfig(cfg); err != nil {
			log.Println(err)
			return
		}
		if err := presets.Set(customPreset, presets.FromConfig(cfg)); err != nil {
			log.Println(err)
			return
		}
		s.presetSelect.Options = presets.Names()
		s.presetSelect.Selected = customPreset
		s.presetSelect.Refresh()
		s.app.Preferences().SetString(prefPreset, customPreset)
	})

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), s.win.Canvas())
	modal.Show()
}

func (s *screen) capture() {
	dir, err := os.UserCacheDir()
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	frame, err := gauge.Render(s.gauge.State())
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	name, err := capture.Frame(frame, filepath.Join(dir, "speedometer"), float64(s.win.Canvas().Scale()))
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	log.Println("saved", name)
	dialog.ShowInformation("Capture", "Saved "+name, s.win)
}

func (s *screen) screenshot() {
	dir, err := os.UserCacheDir()
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	name, err := capture.Screenshot(s.win.Canvas(), filepath.Join(dir, "speedometer"))
	if err != nil {
		dialog.ShowError(err, s.win)
		return
	}
	dialog.ShowInformation("Screenshot", "Saved "+name, s.win)
}
