package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/roffe/speedometer/pkg/gauge"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontsOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

// text draws t centered on t.X, vertically centered in its line box.
func (p *painter) text(t gauge.Text) error {
	if t.Text == "" || t.Size <= 0 || t.Color == nil {
		return nil
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	f := regular
	if t.Bold {
		f = bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    t.Size * p.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(t.Color),
		Face: face,
	}
	m := face.Metrics()
	lineHeight := fixed.Int26_6(t.LineHeight * p.scale * 64)
	top := fixed.Int26_6(t.Top * p.scale * 64)
	baseline := top + (lineHeight-(m.Ascent+m.Descent))/2 + m.Ascent
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(t.X*p.scale*64) - d.MeasureString(t.Text)/2,
		Y: baseline,
	}
	d.DrawString(t.Text)
	return nil
}
