package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/ecs/system"
	"github.com/milk9111/monsterfighter/levels"
	"github.com/milk9111/monsterfighter/mode"
	"github.com/milk9111/monsterfighter/prefabs"
	"github.com/milk9111/monsterfighter/scene"
	"golang.design/x/clipboard"
)

// inspector implements the debug-only keys and hot reload of prefabs,
// scripts and maps edited on disk.
type inspector struct {
	g           *Game
	watcher     *prefabs.Watcher
	clipboardOK bool
}

func newInspector(g *Game) *inspector {
	in := &inspector{g: g}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		in.clipboardOK = true
	}

	w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"), "levels")
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		in.watcher = w
	}
	return in
}

func (in *inspector) Close() {
	if in.watcher != nil {
		_ = in.watcher.Close()
	}
}

func (in *inspector) Update() {
	if keys := in.g.input(); keys != nil {
		if keys.Debug {
			dumpEntities(in.g.world)
		}
		if keys.Copy {
			in.copyDoorDeclaration()
		}
	}

	if in.watcher == nil {
		return
	}
	for _, c := range in.watcher.Drain() {
		if err := in.reload(c); err != nil {
			log.Printf("hot reload %s: %v", c.Path, err)
		} else {
			log.Printf("hot reload %s (%s)", c.Path, c.Kind)
		}
	}
	select {
	case err := <-in.watcher.Errors:
		log.Printf("hot reload watcher: %v", err)
	default:
	}
}

// copyDoorDeclaration puts a door line pointing at the player's cell on the
// clipboard, ready to paste into another map.
func (in *inspector) copyDoorDeclaration() {
	if !in.clipboardOK || in.g.currentMap == nil {
		return
	}
	col, row := in.g.playerCell()
	decl := fmt.Sprintf("/%s %d %d", in.g.currentMap.Name, col, row)
	clipboard.Write(clipboard.FmtText, []byte(decl))
	log.Printf("copied %q", decl)
}

func (in *inspector) reload(c prefabs.Change) error {
	g := in.g
	switch c.Kind {
	case prefabs.ChangeMap:
		if g.currentMap == nil || filepath.Base(c.Path) != g.currentMap.Name {
			return nil
		}
		m, err := levels.Load(g.currentMap.Name)
		if err != nil {
			return err
		}
		entity.UnloadMaps(g.world)
		if _, err := entity.LoadMap(g.world, m); err != nil {
			return err
		}
		entity.SetMapVisible(g.world, g.modes.Current() == mode.Overworld)
		g.currentMap = m
	case prefabs.ChangeScript:
		script, err := system.LoadDamageScript(g.specs.EnemyTable.Script)
		if err != nil {
			return err
		}
		g.fight.SetScript(script)
	case prefabs.ChangeSpec:
		return in.reloadSpecs()
	}
	return nil
}

// reloadSpecs loads every spec again and copies the values into the structs
// the systems already hold, then pushes player tuning onto the live player.
func (in *inspector) reloadSpecs() error {
	g := in.g
	fresh, err := scene.LoadSpecs()
	if err != nil {
		return err
	}
	g.specs.Replace(fresh)

	player, enc := g.specs.Player, g.specs.Encounter
	ecs.ForEach2(g.world, component.PlayerComponent.Kind(), component.EncounterTimerComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.EncounterTimer) {
		p.Speed = player.Speed
		p.HitboxSize = player.HitboxSize
		t.Min = enc.MinSeconds
		t.Max = enc.MaxSeconds
	})
	return nil
}

func (g *Game) playerCell() (int, int) {
	p, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, 0
	}
	t, ok := ecs.Get(g.world, p, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return int(math.Round(t.X / common.TileSize)), int(math.Round(-t.Y / common.TileSize))
}

// dumpEntities logs every root entity and its children as an indented tree.
func dumpEntities(w *ecs.World) {
	var b strings.Builder
	for _, e := range ecs.Entities(w) {
		if _, ok := ecs.Parent(w, e); ok {
			continue
		}
		writeEntity(&b, w, e, 0)
	}
	log.Printf("entities:\n%s", b.String())
}

func writeEntity(b *strings.Builder, w *ecs.World, e ecs.Entity, depth int) {
	label := e.String()
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		label = n.Value + " " + label
	}
	children := ecs.Children(w, e)
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", depth), label)
	if depth > 0 && len(children) == 0 {
		b.WriteString("\n")
		return
	}
	fmt.Fprintf(b, " (%d children)\n", len(children))
	// Map and text rows are long; list only the first level below them.
	if depth >= 2 {
		return
	}
	for _, c := range children {
		writeEntity(b, w, c, depth+1)
	}
}
