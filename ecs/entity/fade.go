package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// FadeZ keeps fades above every other sprite.
const FadeZ = 1000

// NewFade spawns a transparent full-screen block that darkens and clears over
// seconds, delivering payload once the screen is black.
func NewFade(w *ecs.World, payload component.FadePayload, seconds float64) (ecs.Entity, error) {
	size := float64(common.BaseWidth)
	if common.BaseHeight > common.BaseWidth {
		size = float64(common.BaseHeight)
	}

	fade, err := SpawnGlyph(w, 0, color.NRGBA{A: 255}, 0, 0, FadeZ, 1)
	if err != nil {
		return 0, fmt.Errorf("fade: %w", err)
	}
	if s, ok := ecs.Get(w, fade, component.SpriteComponent.Kind()); ok {
		s.Size = size
		s.Color.A = 0
	}
	if err := ecs.Add(w, fade, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("fade: add screen space: %w", err)
	}
	if err := ecs.Add(w, fade, component.ScreenFadeComponent.Kind(), &component.ScreenFade{
		Duration: seconds,
		Payload:  payload,
	}); err != nil {
		return 0, fmt.Errorf("fade: add screen fade: %w", err)
	}
	if err := addName(w, fade, "screen fade"); err != nil {
		return 0, fmt.Errorf("fade: add name: %w", err)
	}
	return fade, nil
}
