package percentagegauge

import (
	"image"
	"log"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/jellydator/ttlcache/v3"
	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/roffe/speedometer/pkg/render/raster"
)

type cacheKey struct {
	w, h       int
	percentage int
	generation uint64
}

// snapshot is what one raster pass draws.
type snapshot struct {
	state gauge.State
	size  fyne.Size
	gen   uint64
}

type PercentageGauge struct {
	widget.BaseWidget

	mu         sync.Mutex
	cfg        gauge.Config
	generation uint64 // bumped by SetConfig
	percentage int
	size       fyne.Size
	minsize    fyne.Size

	face        *canvas.Raster
	valueText   *canvas.Text
	captionText *canvas.Text

	// rendered faces by pixel size and percentage, flushed on config change
	cache *ttlcache.Cache[cacheKey, image.Image]
}

func New(cfg gauge.Config) (*PercentageGauge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &PercentageGauge{
		cfg: cfg,
		cache: ttlcache.New[cacheKey, image.Image](
			ttlcache.WithTTL[cacheKey, image.Image](1*time.Minute),
			ttlcache.WithCapacity[cacheKey, image.Image](64),
		),
	}
	g.ExtendBaseWidget(g)
	g.setMinSize()

	g.face = canvas.NewRaster(g.draw)
	g.face.ScaleMode = canvas.ImageScaleSmooth

	g.valueText = &canvas.Text{Alignment: fyne.TextAlignCenter}
	g.valueText.TextStyle.Bold = true
	g.captionText = &canvas.Text{Alignment: fyne.TextAlignCenter}
	return g, nil
}

func (g *PercentageGauge) setMinSize() {
	d := float32(g.cfg.Diameter)
	if d <= 0 {
		d = gauge.DefaultDiameter
	}
	g.minsize = fyne.NewSize(d, d)
}

func (g *PercentageGauge) Percentage() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.percentage
}

func (g *PercentageGauge) State() gauge.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gauge.State{Percentage: g.percentage, Config: g.cfg}
}

// SetPercentage clamps p and redraws if it changed.
func (g *PercentageGauge) SetPercentage(p int) {
	p = gauge.Clamp(p)
	g.mu.Lock()
	if p == g.percentage {
		g.mu.Unlock()
		return
	}
	g.percentage = p
	g.mu.Unlock()
	g.Refresh()
}

// SetValue is the bus callback, values are rounded to whole percent.
func (g *PercentageGauge) SetValue(value float64) {
	switch {
	case math.IsNaN(value):
		return
	case value >= gauge.MaxPercentage:
		g.SetPercentage(gauge.MaxPercentage)
	case value <= gauge.MinPercentage:
		g.SetPercentage(gauge.MinPercentage)
	default:
		g.SetPercentage(int(math.Round(value)))
	}
}

func (g *PercentageGauge) SetConfig(cfg gauge.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.mu.Lock()
	g.cfg = cfg
	g.generation++
	g.setMinSize()
	g.mu.Unlock()
	g.cache.DeleteAll()
	g.Refresh()
	return nil
}

func (g *PercentageGauge) snapshot() snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot{
		state: gauge.State{Percentage: g.percentage, Config: g.cfg},
		size:  g.size,
		gen:   g.generation,
	}
}

// draw is the raster generator, w and h are in device pixels.
func (g *PercentageGauge) draw(w, h int) image.Image {
	return g.drawSnapshot(g.snapshot(), w, h)
}

// drawSnapshot renders snap. Results are cached under the snapshot's config
// generation, so a pass that races SetConfig can not serve a stale face.
func (g *PercentageGauge) drawSnapshot(snap snapshot, w, h int) image.Image {
	state, size := snap.state, snap.size
	key := cacheKey{w: w, h: h, percentage: state.Percentage, generation: snap.gen}
	if itm := g.cache.Get(key); itm != nil {
		return itm.Value()
	}

	if size.Width <= 0 || size.Height <= 0 {
		size = fyne.NewSize(float32(w), float32(h))
	}
	frame, err := gauge.RenderSize(state, float64(size.Width), float64(size.Height))
	if err != nil {
		log.Println(err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	scale := 1.0
	if size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	img, err := raster.Draw(frame, raster.Options{Scale: scale, SkipText: true})
	if err != nil {
		log.Println(err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	g.cache.Set(key, img, ttlcache.DefaultTTL)
	return img
}

func (g *PercentageGauge) CreateRenderer() fyne.WidgetRenderer {
	return &gaugeRenderer{g: g}
}

type gaugeRenderer struct {
	g       *PercentageGauge
	objects []fyne.CanvasObject
}

func (r *gaugeRenderer) Layout(space fyne.Size) {
	g := r.g
	g.mu.Lock()
	g.size = space
	g.mu.Unlock()

	g.face.Move(fyne.NewPos(0, 0))
	g.face.Resize(space)
	r.layoutText()
}

// layoutText places the labels where the frame's text commands put them.
func (r *gaugeRenderer) layoutText() {
	g := r.g
	state := g.State()
	g.mu.Lock()
	space := g.size
	g.mu.Unlock()

	frame, err := gauge.RenderSize(state, float64(space.Width), float64(space.Height))
	if err != nil {
		log.Println(err)
		return
	}
	texts := make([]gauge.Text, 0, 2)
	for _, cmd := range frame.Commands {
		if t, ok := cmd.(gauge.Text); ok {
			texts = append(texts, t)
		}
	}
	if len(texts) != 2 {
		g.valueText.Hide()
		g.captionText.Hide()
		return
	}
	for i, obj := range []*canvas.Text{g.valueText, g.captionText} {
		t := texts[i]
		obj.Text = t.Text
		obj.Color = t.Color
		obj.TextSize = float32(t.Size)
		obj.TextStyle.Bold = t.Bold
		obj.Move(fyne.NewPos(0, float32(t.Top)))
		obj.Resize(fyne.NewSize(space.Width, float32(t.LineHeight)))
		obj.Show()
	}
}

func (r *gaugeRenderer) MinSize() fyne.Size {
	r.g.mu.Lock()
	defer r.g.mu.Unlock()
	return r.g.minsize
}

func (r *gaugeRenderer) Refresh() {
	r.layoutText()
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *gaugeRenderer) Destroy() {
	r.g.cache.DeleteAll()
}

func (r *gaugeRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.objects = []fyne.CanvasObject{r.g.face, r.g.valueText, r.g.captionText}
	}
	return r.objects
}
