package presets

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/toml"
	"github.com/roffe/speedometer/pkg/colors"
	"github.com/roffe/speedometer/pkg/gauge"
)

const (
	Percentage = "Percentage"
	Protection = "Protection"

	prefsKey = "presets"
)

// Style is the serializable form of a gauge.Config. Colors are "#RRGGBB" or
// "#RRGGBBAA" strings, zero fields keep the gauge defaults.
type Style struct {
	TrackColor          string   `json:"track_color,omitempty" toml:"track_color"`
	ProgressColors      []string `json:"progress_colors" toml:"progress_colors"`
	InnerGlowColor      string   `json:"inner_glow_color,omitempty" toml:"inner_glow_color"`
	PercentageTextColor string   `json:"percentage_text_color,omitempty" toml:"percentage_text_color"`
	CaptionColor        string   `json:"caption_color,omitempty" toml:"caption_color"`
	NeedleColor         string   `json:"needle_color,omitempty" toml:"needle_color"`
	HubColor            string   `json:"hub_color,omitempty" toml:"hub_color"`

	Diameter        float64  `json:"diameter,omitempty" toml:"diameter"`
	TrackWidth      float64  `json:"track_width,omitempty" toml:"track_width"`
	ProgressWidth   float64  `json:"progress_width,omitempty" toml:"progress_width"`
	NeedleLength    float64  `json:"needle_length,omitempty" toml:"needle_length"`
	NeedleBaseWidth float64  `json:"needle_base_width,omitempty" toml:"needle_base_width"`
	StartAngle      *float64 `json:"start_angle,omitempty" toml:"start_angle"`
	SweepAngle      float64  `json:"sweep_angle,omitempty" toml:"sweep_angle"`
	PivotDivisor    float64  `json:"pivot_divisor,omitempty" toml:"pivot_divisor"`
	Caption         string   `json:"caption,omitempty" toml:"caption"`
	RawLabel        bool     `json:"raw_label,omitempty" toml:"raw_label"`
	PlainLabel      bool     `json:"plain_label,omitempty" toml:"plain_label"`
}

var (
	mu  sync.RWMutex
	Map = map[string]Style{}
)

func init() {
	setDefaults()
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(Map))
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isSystem(name string) bool {
	for _, s := range systemNames() {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

func systemNames() []string {
	names := []string{Percentage, Protection}
	return append(names, colors.SupportedColorBlindModes[:]...)
}

func Set(name string, style Style) error {
	if isSystem(name) {
		return fmt.Errorf("cannot replace system presets")
	}
	if _, err := style.Config(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	mu.Lock()
	Map[name] = style
	mu.Unlock()
	return nil
}

func Delete(name string) error {
	if isSystem(name) {
		return fmt.Errorf("cannot delete system presets")
	}
	mu.Lock()
	delete(Map, name)
	mu.Unlock()
	return nil
}

func GetStyle(name string) (Style, error) {
	mu.RLock()
	defer mu.RUnlock()
	style, ok := Map[name]
	if !ok {
		return Style{}, fmt.Errorf("preset %q not found", name)
	}
	return style, nil
}

// Get returns the gauge config for the named preset.
func Get(name string) (gauge.Config, error) {
	style, err := GetStyle(name)
	if err != nil {
		return gauge.Config{}, err
	}
	return style.Config()
}

// Load merges the user presets stored in prefs into Map.
func Load(prefs fyne.Preferences) error {
	data := prefs.String(prefsKey)
	if data == "" {
		return nil
	}
	stored := map[string]Style{}
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	mu.Lock()
	for name, style := range stored {
		if isSystem(name) {
			continue
		}
		Map[name] = style
	}
	mu.Unlock()
	return nil
}

// Save stores all user presets in prefs.
func Save(prefs fyne.Preferences) error {
	mu.RLock()
	user := make(map[string]Style, len(Map))
	for name, style := range Map {
		if !isSystem(name) {
			user[name] = style
		}
	}
	mu.RUnlock()
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	prefs.SetString(prefsKey, string(data))
	return nil
}

// LoadFile reads a style from a TOML file.
func LoadFile(filename string) (Style, error) {
	var style Style
	if _, err := toml.DecodeFile(filename, &style); err != nil {
		return Style{}, fmt.Errorf("load style %s: %w", filename, err)
	}
	return style, nil
}

// Decode reads a style from TOML text.
func Decode(data string) (Style, error) {
	var style Style
	if _, err := toml.Decode(data, &style); err != nil {
		return Style{}, fmt.Errorf("decode style: %w", err)
	}
	return style, nil
}

// Config converts the style to a validated gauge config.
func (s Style) Config() (gauge.Config, error) {
	cfg := gauge.NewConfig(nil, nil)

	for i, hex := range s.ProgressColors {
		c, err := colors.ParseHex(hex)
		if err != nil {
			return gauge.Config{}, fmt.Errorf("progress_colors[%d]: %w", i, err)
		}
		cfg.ProgressColors = append(cfg.ProgressColors, c)
	}
	for _, field := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"track_color", s.TrackColor, &cfg.TrackColor},
		{"inner_glow_color", s.InnerGlowColor, &cfg.InnerGlowColor},
		{"percentage_text_color", s.PercentageTextColor, &cfg.PercentageTextColor},
		{"caption_color", s.CaptionColor, &cfg.CaptionColor},
		{"needle_color", s.NeedleColor, &cfg.NeedleColor},
		{"hub_color", s.HubColor, &cfg.HubColor},
	} {
		if field.hex == "" {
			continue
		}
		c, err := colors.ParseHex(field.hex)
		if err != nil {
			return gauge.Config{}, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = c
	}

	setPositive(&cfg.Diameter, s.Diameter)
	setPositive(&cfg.TrackWidth, s.TrackWidth)
	setPositive(&cfg.ProgressWidth, s.ProgressWidth)
	setPositive(&cfg.NeedleLength, s.NeedleLength)
	setPositive(&cfg.NeedleBaseWidth, s.NeedleBaseWidth)
	setPositive(&cfg.PivotDivisor, s.PivotDivisor)
	if s.StartAngle != nil && finite(*s.StartAngle) {
		cfg.StartAngle = *s.StartAngle
	}
	if s.SweepAngle != 0 && finite(s.SweepAngle) {
		cfg.SweepAngle = s.SweepAngle
	}
	if s.Caption != "" {
		cfg.CaptionText = s.Caption
	}
	cfg.RawLabel = s.RawLabel
	cfg.PlainLabel = s.PlainLabel

	if err := cfg.Validate(); err != nil {
		return gauge.Config{}, err
	}
	return cfg, nil
}

// setPositive keeps dst unless v is a positive finite number.
func setPositive(dst *float64, v float64) {
	if v > 0 && finite(v) {
		*dst = v
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromConfig converts cfg back to its serializable form.
func FromConfig(cfg gauge.Config) Style {
	start := cfg.StartAngle
	s := Style{
		Diameter:        cfg.Diameter,
		TrackWidth:      cfg.TrackWidth,
		ProgressWidth:   cfg.ProgressWidth,
		NeedleLength:    cfg.NeedleLength,
		NeedleBaseWidth: cfg.NeedleBaseWidth,
		StartAngle:      &start,
		SweepAngle:      cfg.SweepAngle,
		PivotDivisor:    cfg.PivotDivisor,
		Caption:         cfg.CaptionText,
		RawLabel:        cfg.RawLabel,
		PlainLabel:      cfg.PlainLabel,
	}
	for _, c := range cfg.ProgressColors {
		s.ProgressColors = append(s.ProgressColors, hexAlpha(c))
	}
	s.TrackColor = hexAlpha(cfg.TrackColor)
	s.InnerGlowColor = hexAlpha(cfg.InnerGlowColor)
	s.PercentageTextColor = hexAlpha(cfg.PercentageTextColor)
	s.CaptionColor = hexAlpha(cfg.CaptionColor)
	s.NeedleColor = hexAlpha(cfg.NeedleColor)
	s.HubColor = hexAlpha(cfg.HubColor)
	return s
}

func hexAlpha(c color.Color) string {
	if c == nil {
		return ""
	}
	n := colors.ToNRGBA(c)
	if n.A == 0xFF {
		return colors.Hex(n)
	}
	return fmt.Sprintf("%s%02x", colors.Hex(n), n.A)
}

func setDefaults() {
	blueRed := []string{"#0000FF", "#FF0000"}
	Map[Percentage] = Style{
		ProgressColors: blueRed,
		InnerGlowColor: "#00FF00",
	}
	Map[Protection] = Style{
		TrackColor:     "#E0E0E0",
		ProgressColors: blueRed,
		InnerGlowColor: "#00FF00",
		Diameter:       gauge.ProtectionDiameter,
		RawLabel:       true,
		PlainLabel:     true,
	}
	for _, name := range colors.SupportedColorBlindModes {
		palette := colors.Palette(colors.StringToColorBlindMode(name))
		style := Style{InnerGlowColor: colors.Hex(palette[len(palette)-1])}
		for _, c := range palette {
			style.ProgressColors = append(style.ProgressColors, colors.Hex(c))
		}
		Map[name] = style
	}
}
