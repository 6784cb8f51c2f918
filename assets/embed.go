// Package assets provides the images and sounds used by sprites. Everything
// is generated in code so prefabs can reference assets by name.
package assets

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	SampleRate = 44100

	imageSize = 64
)

var (
	images = map[string]*ebiten.Image{}

	audioOnce    sync.Once
	audioContext *audio.Context
)

var imageBuilders = map[string]func(size int) *ebiten.Image{
	"face":       func(size int) *ebiten.Image { return faceImage(size, false) },
	"face_angry": func(size int) *ebiten.Image { return faceImage(size, true) },
	"burst":      burstImage,
}

var soundBuilders = map[string]func(sampleRate int) []byte{
	"pop": PopPCM,
}

// LoadImage returns the named image, building it on first use.
func LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := images[name]; ok {
		return img, nil
	}
	build, ok := imageBuilders[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown image %q", name)
	}
	img := build(imageSize)
	images[name] = img
	return img, nil
}

// HasImage reports whether name can be loaded.
func HasImage(name string) bool {
	_, ok := imageBuilders[name]
	return ok
}

// AudioContext returns the process-wide audio context. Ebiten allows only
// one, so it is created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadSound returns the named clip as 16-bit stereo PCM.
func LoadSound(name string) ([]byte, error) {
	build, ok := soundBuilders[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	return build(SampleRate), nil
}

// LoadAudioPlayer creates a player for the named clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	pcm, err := LoadSound(name)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(pcm), nil
}

func faceImage(size int, angry bool) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	ink := color.RGBA{0x20, 0x20, 0x28, 0xff}

	vector.DrawFilledCircle(img, s/2, s/2, s/2-1, color.White, true)

	eyeY := s * 0.4
	vector.DrawFilledCircle(img, s*0.35, eyeY, s*0.07, ink, true)
	vector.DrawFilledCircle(img, s*0.65, eyeY, s*0.07, ink, true)

	if angry {
		// brows slant down toward the nose
		vector.StrokeLine(img, s*0.22, s*0.24, s*0.44, s*0.32, s*0.05, ink, true)
		vector.StrokeLine(img, s*0.78, s*0.24, s*0.56, s*0.32, s*0.05, ink, true)
		vector.StrokeLine(img, s*0.32, s*0.74, s*0.68, s*0.74, s*0.06, ink, true)
		return img
	}

	// smile as a short polyline
	const segments = 8
	for i := 0; i < segments; i++ {
		a0 := math.Pi * (0.15 + 0.7*float64(i)/segments)
		a1 := math.Pi * (0.15 + 0.7*float64(i+1)/segments)
		r := float64(s) * 0.22
		cx, cy := float64(s)/2, float64(s)*0.58
		vector.StrokeLine(img,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			s*0.05, ink, true)
	}
	return img
}

func burstImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.StrokeCircle(img, s/2, s/2, s/2-2, s*0.06, color.White, true)

	const rays = 10
	for i := 0; i < rays; i++ {
		a := 2 * math.Pi * float64(i) / rays
		in, out := float64(s)*0.18, float64(s)*0.42
		c := float64(s) / 2
		vector.StrokeLine(img,
			float32(c+in*math.Cos(a)), float32(c+in*math.Sin(a)),
			float32(c+out*math.Cos(a)), float32(c+out*math.Sin(a)),
			s*0.05, color.White, true)
	}
	return img
}
