package backend

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/monsterfighter/assets"
	"github.com/milk9111/monsterfighter/assets/glyph"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e      ecs.Entity
	t      component.Transform
	s      *component.Sprite
	screen bool
}

// Draw paints every visible sprite from back to front. World positions are
// y-up around the camera; the screen is y-down around its center.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	var items []drawItem
	for _, e := range ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden {
			continue
		}
		t, ok := ecs.WorldTransform(w, e)
		if !ok {
			continue
		}
		items = append(items, drawItem{e: e, t: t, s: s, screen: ecs.InScreenSpace(w, e)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].t.Z != items[j].t.Z {
			return items[i].t.Z < items[j].t.Z
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	bounds := screen.Bounds()
	halfW, halfH := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	for _, it := range items {
		img := assets.Glyph(it.s.Glyph)
		if img == nil {
			continue
		}

		size := it.s.Size
		if size == 0 {
			size = common.TileSize
		}

		x, y, z := it.t.X-camX, it.t.Y-camY, zoom
		if it.screen {
			x, y, z = it.t.X, it.t.Y, 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-glyph.Cell/2, -glyph.Cell/2)
		op.GeoM.Scale(size/glyph.Cell*it.t.ScaleX*z, size/glyph.Cell*it.t.ScaleY*z)
		op.GeoM.Translate(halfW+x*z, halfH-y*z)
		op.ColorScale.ScaleWithColor(it.s.Color)

		screen.DrawImage(img, op)
	}
}
