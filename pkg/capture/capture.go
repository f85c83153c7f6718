package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/roffe/speedometer/pkg/render/raster"
)

func filename(dir, prefix string) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.png", prefix, time.Now().Format("2006-01-02-15-04-05.000")))
}

// Screenshot writes the current content of c as PNG into dir and returns
// the file name.
func Screenshot(c fyne.Canvas, dir string) (string, error) {
	return writePNG(filename(dir, "capture"), c.Capture())
}

// Frame rasterizes f at scale and writes it as PNG into dir.
func Frame(f *gauge.Frame, dir string, scale float64) (string, error) {
	img, err := raster.Draw(f, raster.Options{Scale: scale})
	if err != nil {
		return "", err
	}
	return writePNG(filename(dir, "gauge"), img)
}

func writePNG(name string, img image.Image) (string, error) {
	buff := bytes.NewBuffer(nil)
	if err := png.Encode(buff, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(name, buff.Bytes(), 0o644); err != nil {
		return "", err
	}
	return name, nil
}
