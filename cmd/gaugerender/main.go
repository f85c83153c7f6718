package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/configdir"
	"github.com/skratchdot/open-golang/open"
	"golang.org/x/sync/errgroup"

	"github.com/roffe/speedometer/pkg/gauge"
	"github.com/roffe/speedometer/pkg/presets"
	"github.com/roffe/speedometer/pkg/render/raster"
	"github.com/roffe/speedometer/pkg/render/svg"
)

const styleFile = "gauge.toml"

var (
	percentage int
	output     string
	presetName string
	stylePath  string
	scale      float64
	frames     int
	openOutput bool
	listStyles bool
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
	flag.IntVar(&percentage, "p", 50, "percentage to render")
	flag.StringVar(&output, "o", "gauge.png", "output file, .png or .svg")
	flag.StringVar(&presetName, "preset", presets.Percentage, "named style")
	flag.StringVar(&stylePath, "style", "", "TOML style file, overrides -preset")
	flag.Float64Var(&scale, "scale", 1, "PNG pixels per unit")
	flag.IntVar(&frames, "frames", 0, "render this many evenly spaced percentages instead of -p")
	flag.BoolVar(&openOutput, "open", false, "open the output when done")
	flag.BoolVar(&listStyles, "list", false, "list named styles and exit")
}

func main() {
	flag.Parse()

	if listStyles {
		for _, name := range presets.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(stylePath, presetName)
	if err != nil {
		log.Fatalf("style: %v", err)
	}

	if frames <= 0 {
		if err := renderFile(gauge.State{Percentage: percentage, Config: cfg}, output, scale); err != nil {
			log.Fatalf("render: %v", err)
		}
		log.Printf("wrote %s", output)
		if openOutput {
			if err := open.Run(output); err != nil {
				log.Fatalf("open: %v", err)
			}
		}
		return
	}

	files, err := renderFrames(context.Background(), cfg, output, frames, scale)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %d frames", len(files))
	if openOutput && len(files) > 0 {
		if err := open.Run(filepath.Dir(files[0])); err != nil {
			log.Fatalf("open: %v", err)
		}
	}
}

// loadConfig resolves the style: an explicit file, then gauge.toml in the
// user config dir, then the named preset.
func loadConfig(path, name string) (gauge.Config, error) {
	if path == "" {
		cd := configdir.New("roffe", "speedometer")
		if folder := cd.QueryFolderContainsFile(styleFile); folder != nil {
			path = filepath.Join(folder.Path, styleFile)
		}
	}
	if path != "" {
		style, err := presets.LoadFile(path)
		if err != nil {
			return gauge.Config{}, err
		}
		return style.Config()
	}
	return presets.Get(name)
}

func renderFile(s gauge.State, filename string, scale float64) error {
	frame, err := gauge.Render(s)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		err = svg.Encode(f, frame)
	default:
		err = raster.EncodePNG(f, frame, raster.Options{Scale: scale})
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// framePercentages spreads n values evenly over 0..100, both ends included.
func framePercentages(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{gauge.MaxPercentage}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = gauge.MinPercentage + i*(gauge.MaxPercentage-gauge.MinPercentage)/(n-1)
	}
	return out
}

// frameName inserts a zero padded frame index before the extension.
func frameName(base string, index int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(base, ext), index, ext)
}

func renderFrames(ctx context.Context, cfg gauge.Config, base string, n int, scale float64) ([]string, error) {
	values := framePercentages(n)
	files := make([]string, len(values))
	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(4)
	for i, p := range values {
		i, p := i, p
		name := frameName(base, i)
		files[i] = name
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := renderFile(gauge.State{Percentage: p, Config: cfg}, name, scale); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
