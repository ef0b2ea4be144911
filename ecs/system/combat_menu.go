package system

import (
	"log"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/prefabs"
)

// CombatMenuSystem moves the menu selection, handles confirm and keeps the
// selected button highlighted.
type CombatMenuSystem struct {
	spec *prefabs.MenuSpec
}

// NewCombatMenuSystem reads slide and color settings through spec each tick.
func NewCombatMenuSystem(spec *prefabs.MenuSpec) *CombatMenuSystem {
	return &CombatMenuSystem{spec: spec}
}

func (s *CombatMenuSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	menuEnt, ok := ecs.First(w, component.CombatMenuComponent.Kind())
	if !ok {
		return
	}
	menu, _ := ecs.Get(w, menuEnt, component.CombatMenuComponent.Kind())

	in := &component.Input{}
	if inEnt, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		in, _ = ecs.Get(w, inEnt, component.InputComponent.Kind())
	}

	if menu.Active {
		s.handleSelection(w, menu, in)
	} else if in.Confirm {
		menu.Active = true
	}

	s.slide(w, menuEnt, menu)
	s.highlight(w, menuEnt, menu)
}

func (s *CombatMenuSystem) handleSelection(w *ecs.World, menu *component.CombatMenu, in *component.Input) {
	if in.LeftPressed {
		menu.Selected = menu.Selected.Step(-1)
	}
	if in.RightPressed {
		menu.Selected = menu.Selected.Step(1)
	}
	if in.UpPressed {
		menu.Selected = menu.Selected.Step(2)
	}
	if in.DownPressed {
		menu.Selected = menu.Selected.Step(-2)
	}

	if !in.Confirm {
		return
	}
	switch menu.Selected {
	case component.MenuFight:
		req := ecs.CreateEntity(w)
		if err := ecs.Add(w, req, component.FightActionComponent.Kind(), &component.FightAction{}); err != nil {
			log.Printf("combat menu: send fight action: %v", err)
		}
	case component.MenuRun:
		requestMode(w, component.ModeOverworld)
	case component.MenuSwap, component.MenuItem:
		menu.Active = false
	}
}

func (s *CombatMenuSystem) slide(w *ecs.World, menuEnt ecs.Entity, menu *component.CombatMenu) {
	target := 0.0
	if !menu.Active {
		target = s.spec.SlideTiles * common.TileSize
	}
	step := s.spec.SlideSpeed * common.TileSize * w.Delta()
	switch {
	case step <= 0:
		menu.SlideOffset = target
	case menu.SlideOffset < target:
		menu.SlideOffset = min(menu.SlideOffset+step, target)
	case menu.SlideOffset > target:
		menu.SlideOffset = max(menu.SlideOffset-step, target)
	}
	if t, ok := ecs.Get(w, menuEnt, component.TransformComponent.Kind()); ok {
		t.X = menu.HomeX + menu.SlideOffset
	}
}

// highlight walks menu -> button -> panel and tints the panel cells.
func (s *CombatMenuSystem) highlight(w *ecs.World, menuEnt ecs.Entity, menu *component.CombatMenu) {
	for _, button := range ecs.Children(w, menuEnt) {
		cb, ok := ecs.Get(w, button, component.CombatButtonComponent.Kind())
		if !ok {
			continue
		}
		kids := ecs.Children(w, button)
		if len(kids) == 0 {
			continue
		}
		c := s.spec.Idle.NRGBA
		if cb.Option == menu.Selected {
			c = s.spec.Highlight.NRGBA
		}
		entity.Recolor(w, kids[0], c)
	}
}

func requestMode(w *ecs.World, m component.GameMode) {
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ModeChangeRequestComponent.Kind(), &component.ModeChangeRequest{Mode: m}); err != nil {
		log.Printf("request mode %s: %v", m, err)
	}
}
