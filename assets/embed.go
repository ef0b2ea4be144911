package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/monsterfighter/assets/glyph"
	"github.com/milk9111/monsterfighter/assets/sfx"
)

// SampleRate is the rate of the shared audio context and every clip.
const SampleRate = 44100

//go:embed *
var assetsFS embed.FS

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	sheetOnce  sync.Once
	glyphSheet *ebiten.Image
	glyphCells [glyph.Count]*ebiten.Image
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// GlyphSheet returns the glyph sheet uploaded as an ebiten image.
func GlyphSheet() *ebiten.Image {
	sheetOnce.Do(func() {
		glyphSheet = ebiten.NewImageFromImage(glyph.Sheet())
		for i := range glyphCells {
			glyphCells[i] = glyphSheet.SubImage(glyph.Rect(i)).(*ebiten.Image)
		}
	})
	return glyphSheet
}

// Glyph returns one cell of the glyph sheet. Out of range indices return
// nil.
func Glyph(index int) *ebiten.Image {
	if index < 0 || index >= glyph.Count {
		return nil
	}
	GlyphSheet()
	return glyphCells[index]
}

// LoadFile reads an asset, preferring a copy in the assets directory on
// disk over the embedded one.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if data, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadClip returns decoded PCM for a clip. A wav file wins when one exists;
// otherwise built-in clips are synthesized.
func LoadClip(name, file string) ([]byte, error) {
	if file != "" {
		if b, err := LoadFile(file); err == nil {
			return decodeClip(file, b)
		}
	}

	switch name {
	case "hit":
		return sfx.Hit(SampleRate), nil
	default:
		return nil, fmt.Errorf("assets: clip %q: no file and no built-in sound", name)
	}
}

func decodeClip(path string, b []byte) ([]byte, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		// Already-decoded PCM in ebiten's native format.
		return b, nil
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read wav %q: %w", path, err)
	}
	return pcm, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
