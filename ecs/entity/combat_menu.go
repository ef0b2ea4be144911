package entity

import (
	"fmt"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/prefabs"
)

// SpawnCombatMenu builds the 2x2 option menu. Each button's first child is
// its nine slice panel and its second the option label.
func SpawnCombatMenu(w *ecs.World, spec *prefabs.UISpec) (ecs.Entity, error) {
	ms := spec.Menu
	homeX := ms.Anchor.X * common.TileSize

	menu := ecs.CreateEntity(w)
	if err := ecs.Add(w, menu, component.TransformComponent.Kind(), &component.Transform{
		X: homeX,
		Y: ms.Anchor.Y * common.TileSize,
		Z: 20,
	}); err != nil {
		return 0, fmt.Errorf("combat menu: add transform: %w", err)
	}
	if err := ecs.Add(w, menu, component.CombatMenuComponent.Kind(), &component.CombatMenu{
		Selected: component.MenuFight,
		Active:   true,
		HomeX:    homeX,
	}); err != nil {
		return 0, fmt.Errorf("combat menu: add menu: %w", err)
	}
	if err := addName(w, menu, "combat menu"); err != nil {
		return 0, fmt.Errorf("combat menu: add name: %w", err)
	}

	for i := 0; i < component.MenuOptionCount; i++ {
		opt := component.MenuOption(i)
		button, err := spawnCombatButton(w, spec, opt)
		if err != nil {
			return 0, err
		}
		if err := ecs.SetParent(w, button, menu); err != nil {
			return 0, fmt.Errorf("combat menu: attach %s: %w", opt, err)
		}
	}
	return menu, nil
}

func spawnCombatButton(w *ecs.World, spec *prefabs.UISpec, opt component.MenuOption) (ecs.Entity, error) {
	ms := spec.Menu
	col, row := int(opt)%2, int(opt)/2

	button := ecs.CreateEntity(w)
	if err := ecs.Add(w, button, component.TransformComponent.Kind(), &component.Transform{
		X: float64(col*ms.ButtonWidth) * common.TileSize,
		Y: -float64(row*ms.ButtonHeight) * common.TileSize,
	}); err != nil {
		return 0, fmt.Errorf("combat menu: %s: add transform: %w", opt, err)
	}
	if err := ecs.Add(w, button, component.CombatButtonComponent.Kind(), &component.CombatButton{Option: opt}); err != nil {
		return 0, fmt.Errorf("combat menu: %s: add button: %w", opt, err)
	}
	if err := addName(w, button, opt.String()); err != nil {
		return 0, fmt.Errorf("combat menu: %s: add name: %w", opt, err)
	}

	panel, err := SpawnNineSlice(w, spec.NineSlice, 0, 0, ms.ButtonWidth, ms.ButtonHeight, ms.Idle.NRGBA)
	if err != nil {
		return 0, fmt.Errorf("combat menu: %s: %w", opt, err)
	}
	if err := ecs.SetParent(w, panel, button); err != nil {
		return 0, fmt.Errorf("combat menu: %s: attach panel: %w", opt, err)
	}

	label, err := SpawnText(w, opt.String(), common.TileSize, -common.TileSize*float64(ms.ButtonHeight/2), 0, ms.Text.NRGBA)
	if err != nil {
		return 0, fmt.Errorf("combat menu: %s: %w", opt, err)
	}
	if err := ecs.SetParent(w, label, button); err != nil {
		return 0, fmt.Errorf("combat menu: %s: attach label: %w", opt, err)
	}
	return button, nil
}

// DespawnCombatMenus destroys every combat menu.
func DespawnCombatMenus(w *ecs.World) {
	for _, e := range ecs.Query(w, component.CombatMenuComponent.Kind()) {
		ecs.DestroyRecursive(w, e)
	}
}
