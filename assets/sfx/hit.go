// Package sfx synthesizes the game's sound effects as 16-bit stereo PCM.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	HitFrequency = 880.0
	HitDuration  = 150 * time.Millisecond
)

// decayTone is a sine wave whose amplitude falls off exponentially.
type decayTone struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

func (g *decayTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *decayTone) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Hit returns the sound played when an attack lands.
func Hit(sampleRate int) []byte {
	sr := beep.SampleRate(sampleRate)
	tone := &decayTone{sr: sr, freq: HitFrequency, decay: 30}
	return Render(beep.Take(sr.N(HitDuration), withVolume(tone, 0.6)))
}

// Render drains s into little-endian signed 16-bit stereo frames.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = appendSample(out, v)
			}
		}
		if !ok {
			return out
		}
	}
}

func appendSample(out []byte, v float64) []byte {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := int16(v * math.MaxInt16)
	return append(out, byte(s), byte(uint16(s)>>8))
}
