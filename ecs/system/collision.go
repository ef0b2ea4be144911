package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// boxAt returns a square box of the given side centered on x, y.
func boxAt(x, y, side float64) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: x, Y: y}, side/2, side/2)
}

func playerBox(p *component.Player, x, y float64) cp.BB {
	return boxAt(x, y, common.TileSize*p.HitboxSize)
}

// overlaps reports strict overlap: boxes that only share an edge do not
// collide. cp.BB.Intersects compares with <= and would stop a player
// standing flush against a wall from sliding along it.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// tilesOverlapping returns the tiles tagged with kind whose one-tile box
// overlaps box.
func tilesOverlapping(w *ecs.World, box cp.BB, kind ecs.Kind) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range ecs.Query(w, kind, component.TransformComponent.Kind()) {
		t, ok := ecs.WorldTransform(w, e)
		if !ok {
			continue
		}
		if overlaps(box, boxAt(t.X, t.Y, common.TileSize)) {
			out = append(out, e)
		}
	}
	return out
}

func blocked(w *ecs.World, box cp.BB) bool {
	return len(tilesOverlapping(w, box, component.TileColliderComponent.Kind())) > 0
}
