package assets

import (
	"embed"
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var assetsFS embed.FS

const (
	PaletteFile = "palette.yaml"
	SampleRate  = 44100
)

type ToneSpec struct {
	Hz float64 `yaml:"hz"`
	Ms int     `yaml:"ms"`
}

// Palette maps sprite sheets to placeholder colours and sounds to tones.
type Palette struct {
	Sheets   map[string]string   `yaml:"sheets"`
	Sky      string              `yaml:"sky"`
	Fallback string              `yaml:"fallback"`
	Tones    map[string]ToneSpec `yaml:"tones"`
}

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on
// first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func LoadPalette() (*Palette, error) {
	b, err := LoadFile(PaletteFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", PaletteFile, err)
	}
	var p Palette
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("assets: unmarshal %s: %w", PaletteFile, err)
	}
	return &p, nil
}

// SheetColor resolves a sheet's colour name, falling back to the palette
// fallback and then to magenta.
func (p *Palette) SheetColor(sheet string) color.RGBA {
	if p != nil {
		if c, ok := colornames.Map[strings.ToLower(p.Sheets[sheet])]; ok {
			return c
		}
		if c, ok := colornames.Map[strings.ToLower(p.Fallback)]; ok {
			return c
		}
	}
	return colornames.Magenta
}

func (p *Palette) SkyColor() color.RGBA {
	if p != nil {
		if c, ok := colornames.Map[strings.ToLower(p.Sky)]; ok {
			return c
		}
	}
	return colornames.Lightskyblue
}

// ToneBytes renders a named tone as 16-bit little-endian stereo PCM at
// SampleRate, the format audio.Context players consume directly.
func (p *Palette) ToneBytes(name string) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("assets: nil palette")
	}
	spec, ok := p.Tones[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown tone %q", name)
	}
	return SynthTone(spec.Hz, spec.Ms), nil
}

// SynthTone produces a square wave with a linear fade out.
func SynthTone(hz float64, ms int) []byte {
	if hz <= 0 || ms <= 0 {
		return nil
	}
	n := SampleRate * ms / 1000
	out := make([]byte, n*4)
	const amp = 0.25 * math.MaxInt16
	for i := 0; i < n; i++ {
		phase := math.Mod(float64(i)*hz/SampleRate, 1)
		v := amp
		if phase >= 0.5 {
			v = -amp
		}
		v *= 1 - float64(i)/float64(n)
		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
