package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/roffe/speedometer/pkg/controller"
	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/presets"
	"github.com/roffe/speedometer/pkg/theme"
	"github.com/roffe/speedometer/pkg/widgets/percentagegauge"
)

const (
	percentageTopic = "gauge.percentage"

	prefPercentage = "percentage"
	prefPreset     = "preset"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.speedometer")
	a.Settings().SetTheme(theme.GaugeTheme{})
	prefs := a.Preferences()

	if err := presets.Load(prefs); err != nil {
		log.Println(err)
	}

	bus := ebus.New(time.Minute)
	defer bus.Close()
	ctrl := controller.New(bus, percentageTopic, controller.DefaultStep)

	presetName := prefs.StringWithFallback(prefPreset, presets.Percentage)
	cfg, err := presets.Get(presetName)
	if err != nil {
		log.Println(err)
		presetName = presets.Percentage
		if cfg, err = presets.Get(presetName); err != nil {
			log.Fatal(err)
		}
	}

	g, err := percentagegauge.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	cancel := bus.SubscribeFunc(percentageTopic, g.SetValue)
	defer cancel()
	ctrl.Set(prefs.Int(prefPercentage))

	w := a.NewWindow("Speedometer")
	s := newScreen(a, w, g, ctrl, presetName)
	w.SetContent(s.layout())
	w.Resize(fyne.NewSize(420, 480))
	w.SetOnClosed(func() {
		prefs.SetInt(prefPercentage, ctrl.Value())
		if err := presets.Save(prefs); err != nil {
			log.Println(err)
		}
	})
	w.ShowAndRun()
}
