package system

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/prefabs"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func spawnTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Glyph: 1})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{Speed: 6, HitboxSize: 0.9, Active: true})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.EncounterTimerComponent.Kind(), &component.EncounterTimer{Target: 1, Min: 0.5, Max: 2.5})
	return e
}

func spawnTestTile(t *testing.T, w *ecs.World, x, y float64, tag func(ecs.Entity)) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	tag(e)
	return e
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	tests := []struct {
		name string
		ax   float64
		want bool
	}{
		{"apart", 40, false},
		{"touching edge", 32, false},
		{"overlapping", 31.5, true},
		{"same cell", 0, true},
	}
	for _, tt := range tests {
		got := overlaps(boxAt(0, 0, common.TileSize), boxAt(tt.ax, 0, common.TileSize))
		if got != tt.want {
			t.Fatalf("%s: overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlayerControllerResolvesAxesIndependently(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(1.0 / common.TPS)
	player := spawnTestPlayer(t, w, 0, 0)
	spawnTestTile(t, w, common.TileSize, 0, func(e ecs.Entity) {
		mustAdd(t, w, e, component.TileColliderComponent.Kind(), &component.TileCollider{})
	})

	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	in.Right, in.Up = true, true

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	step := 6 * common.TileSize / common.TPS
	if tr.X != 0 {
		t.Fatalf("x = %v, want blocked at 0", tr.X)
	}
	if !near(tr.Y, step) {
		t.Fatalf("y = %v, want %v", tr.Y, step)
	}
	if !p.JustMoved {
		t.Fatalf("a committed y move should set JustMoved")
	}
}

func TestPlayerControllerKeyPriority(t *testing.T) {
	tests := []struct {
		name           string
		in             component.Input
		wantDX, wantDY float64
		wantFacing     component.Facing
		wantMoved      bool
	}{
		{"idle", component.Input{}, 0, 0, component.FacingDown, false},
		{"right wins over left", component.Input{Left: true, Right: true}, 1, 0, component.FacingDown, true},
		{"down wins over up", component.Input{Up: true, Down: true}, 0, -1, component.FacingDown, true},
		{"left press faces left", component.Input{Left: true, LeftPressed: true}, -1, 0, component.FacingLeft, true},
		{"up press faces up", component.Input{Up: true, UpPressed: true}, 0, 1, component.FacingUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.SetDelta(0.5)
			player := spawnTestPlayer(t, w, 0, 0)
			in, _ := ecs.Get(w, player, component.InputComponent.Kind())
			*in = tt.in

			NewPlayerControllerSystem().Update(w)

			step := 6 * 0.5 * common.TileSize
			tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
			if !near(tr.X, tt.wantDX*step) || !near(tr.Y, tt.wantDY*step) {
				t.Fatalf("moved to %v,%v", tr.X, tr.Y)
			}
			if p.Facing != tt.wantFacing {
				t.Fatalf("facing = %v, want %v", p.Facing, tt.wantFacing)
			}
			if p.JustMoved != tt.wantMoved {
				t.Fatalf("JustMoved = %v", p.JustMoved)
			}
		})
	}
}

func TestInactivePlayerDoesNotMove(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.1)
	player := spawnTestPlayer(t, w, 0, 0)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Active = false
	p.JustMoved = true
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	in.Right = true

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 0 || p.JustMoved {
		t.Fatalf("inactive player moved: x=%v JustMoved=%v", tr.X, p.JustMoved)
	}
}

func onGrass(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	player := spawnTestPlayer(t, w, 0, 0)
	spawnTestTile(t, w, 0, 0, func(e ecs.Entity) {
		mustAdd(t, w, e, component.EncounterZoneComponent.Kind(), &component.EncounterZone{})
	})
	return player
}

func TestEncounterTimerTriggersFade(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.1)
	player := onGrass(t, w)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	timer, _ := ecs.Get(w, player, component.EncounterTimerComponent.Kind())
	timer.Target = 0.45

	sys := NewEncounterSystem(rand.New(rand.NewSource(3)), &prefabs.EncounterSpec{FadeSeconds: 1, DoorFadeSeconds: 1})
	for i := 0; i < 4; i++ {
		p.JustMoved = true
		sys.Update(w)
	}
	if n := len(ecs.Query(w, component.ScreenFadeComponent.Kind())); n != 0 {
		t.Fatalf("fade started early after %v seconds", timer.Elapsed)
	}

	p.JustMoved = true
	sys.Update(w)

	fades := ecs.Query(w, component.ScreenFadeComponent.Kind())
	if len(fades) != 1 {
		t.Fatalf("fades = %d, want 1", len(fades))
	}
	fade, _ := ecs.Get(w, fades[0], component.ScreenFadeComponent.Kind())
	if fade.Payload.Kind != component.FadeEnterCombat {
		t.Fatalf("payload = %v, want enter combat", fade.Payload.Kind)
	}
	if timer.Elapsed != 0 {
		t.Fatalf("elapsed = %v, want reset", timer.Elapsed)
	}
	if timer.Target < 0.5 || timer.Target >= 2.5 {
		t.Fatalf("new target %v outside [0.5, 2.5)", timer.Target)
	}
}

func TestEncounterNeedsMovement(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.1)
	player := onGrass(t, w)
	timer, _ := ecs.Get(w, player, component.EncounterTimerComponent.Kind())

	sys := NewEncounterSystem(rand.New(rand.NewSource(3)), &prefabs.EncounterSpec{FadeSeconds: 1, DoorFadeSeconds: 1})
	for i := 0; i < 50; i++ {
		sys.Update(w)
	}
	if timer.Elapsed != 0 {
		t.Fatalf("standing still accumulated %v seconds", timer.Elapsed)
	}

	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	tr.X = 2 * common.TileSize
	p.JustMoved = true
	sys.Update(w)
	if timer.Elapsed != 0 {
		t.Fatalf("walking off grass accumulated %v seconds", timer.Elapsed)
	}
}

func TestDoorStartsExitFade(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnTestPlayer(t, w, 0, 0)
	door := component.Door{Path: "house.txt", X: 4, Y: 5}
	spawnTestTile(t, w, 10, 0, func(e ecs.Entity) {
		mustAdd(t, w, e, component.DoorComponent.Kind(), &door)
	})
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.JustMoved = true

	NewEncounterSystem(rand.New(rand.NewSource(1)), &prefabs.EncounterSpec{FadeSeconds: 1, DoorFadeSeconds: 0.5}).Update(w)

	if p.Active {
		t.Fatalf("player should be frozen on a door")
	}
	fades := ecs.Query(w, component.ScreenFadeComponent.Kind())
	if len(fades) != 1 {
		t.Fatalf("fades = %d, want 1", len(fades))
	}
	fade, _ := ecs.Get(w, fades[0], component.ScreenFadeComponent.Kind())
	if fade.Payload.Kind != component.FadeExitDoor || fade.Payload.Door != door || fade.Duration != 0.5 {
		t.Fatalf("fade = %+v", fade)
	}
}

func TestScreenFadeSendsPayloadOnce(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.25)
	player := spawnTestPlayer(t, w, 0, 0)
	door := component.Door{Path: "cave.txt", X: 3, Y: 2}
	fadeEnt, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeExitDoor, Door: door}, 1)
	if err != nil {
		t.Fatalf("NewFade: %v", err)
	}

	sys := NewScreenFadeSystem()
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	wantAlpha := []float64{0.5, 1, 0.5}
	wantRequests := []int{0, 0, 1}
	for i := range wantAlpha {
		sys.Update(w)
		fade, ok := ecs.Get(w, fadeEnt, component.ScreenFadeComponent.Kind())
		if !ok {
			t.Fatalf("tick %d: fade destroyed early", i)
		}
		if !near(fade.Alpha, wantAlpha[i]) {
			t.Fatalf("tick %d: alpha = %v, want %v", i, fade.Alpha, wantAlpha[i])
		}
		if n := len(ecs.Query(w, component.LevelChangeRequestComponent.Kind())); n != wantRequests[i] {
			t.Fatalf("tick %d: requests = %d, want %d", i, n, wantRequests[i])
		}
		if p.Active {
			t.Fatalf("tick %d: player active during fade", i)
		}
	}

	sys.Update(w)
	if ecs.IsAlive(w, fadeEnt) {
		t.Fatalf("fade should be destroyed at the end")
	}
	if !p.Active {
		t.Fatalf("player should be active after the fade")
	}
	reqs := ecs.Query(w, component.LevelChangeRequestComponent.Kind())
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want exactly 1", len(reqs))
	}
	req, _ := ecs.Get(w, reqs[0], component.LevelChangeRequestComponent.Kind())
	if req.Door != door {
		t.Fatalf("request door = %+v", req.Door)
	}
}

func TestScreenFadeEnterCombatRequestsMode(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.6)
	if _, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeEnterCombat}, 1); err != nil {
		t.Fatalf("NewFade: %v", err)
	}
	NewScreenFadeSystem().Update(w)

	reqs := ecs.Query(w, component.ModeChangeRequestComponent.Kind())
	if len(reqs) != 1 {
		t.Fatalf("mode requests = %d", len(reqs))
	}
	req, _ := ecs.Get(w, reqs[0], component.ModeChangeRequestComponent.Kind())
	if req.Mode != component.ModeCombat {
		t.Fatalf("mode = %v", req.Mode)
	}
}

func TestOverlappingFadesKeepPlayerFrozen(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.2)
	player := spawnTestPlayer(t, w, 0, 0)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	in.Right = true

	long, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeEnterCombat}, 5)
	if err != nil {
		t.Fatalf("NewFade: %v", err)
	}
	if _, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeEnterCombat}, 0.1); err != nil {
		t.Fatalf("NewFade: %v", err)
	}

	fades := NewScreenFadeSystem()
	controller := NewPlayerControllerSystem()
	fades.Update(w)
	controller.Update(w)

	if !ecs.IsAlive(w, long) {
		t.Fatalf("long fade finished early")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if p.Active || p.JustMoved || tr.X != 0 {
		t.Fatalf("player moved during a running fade: active=%v JustMoved=%v x=%v", p.Active, p.JustMoved, tr.X)
	}

	w.SetDelta(5)
	fades.Update(w)
	if n := len(ecs.Query(w, component.ScreenFadeComponent.Kind())); n != 0 {
		t.Fatalf("fades left = %d", n)
	}
	if !p.Active {
		t.Fatalf("player should be active once every fade is done")
	}
}

func TestFacingUpdatesWhileInactive(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.1)
	player := spawnTestPlayer(t, w, 0, 0)
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Active = false
	p.Facing = component.FacingDown
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	in.Left, in.LeftPressed = true, true

	NewPlayerControllerSystem().Update(w)

	if p.Facing != component.FacingLeft {
		t.Fatalf("facing = %v, want left", p.Facing)
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 0 {
		t.Fatalf("inactive player moved to x=%v", tr.X)
	}
}

func newMenuWorld(t *testing.T) (*ecs.World, *CombatMenuSystem, *component.CombatMenu, *component.Input) {
	t.Helper()
	ui, err := prefabs.LoadUISpec()
	if err != nil {
		t.Fatalf("ui spec: %v", err)
	}
	w := ecs.NewWorld()
	w.SetDelta(1.0 / common.TPS)
	menuEnt, err := entity.SpawnCombatMenu(w, ui)
	if err != nil {
		t.Fatalf("SpawnCombatMenu: %v", err)
	}
	inEnt := ecs.CreateEntity(w)
	mustAdd(t, w, inEnt, component.InputComponent.Kind(), &component.Input{})
	menu, _ := ecs.Get(w, menuEnt, component.CombatMenuComponent.Kind())
	in, _ := ecs.Get(w, inEnt, component.InputComponent.Kind())
	return w, NewCombatMenuSystem(&ui.Menu), menu, in
}

func TestCombatMenuNavigation(t *testing.T) {
	tests := []struct {
		name  string
		press func(*component.Input)
		times int
		want  []component.MenuOption
	}{
		{
			name:  "right cycles through all four",
			press: func(in *component.Input) { in.RightPressed = true },
			times: 4,
			want:  []component.MenuOption{component.MenuSwap, component.MenuItem, component.MenuRun, component.MenuFight},
		},
		{
			name:  "left wraps backwards",
			press: func(in *component.Input) { in.LeftPressed = true },
			times: 2,
			want:  []component.MenuOption{component.MenuRun, component.MenuItem},
		},
		{
			name:  "up jumps two and returns",
			press: func(in *component.Input) { in.UpPressed = true },
			times: 2,
			want:  []component.MenuOption{component.MenuItem, component.MenuFight},
		},
		{
			name:  "down jumps two and returns",
			press: func(in *component.Input) { in.DownPressed = true },
			times: 2,
			want:  []component.MenuOption{component.MenuItem, component.MenuFight},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, sys, menu, in := newMenuWorld(t)
			for i := 0; i < tt.times; i++ {
				*in = component.Input{}
				tt.press(in)
				sys.Update(w)
				if menu.Selected != tt.want[i] {
					t.Fatalf("press %d: selected = %v, want %v", i, menu.Selected, tt.want[i])
				}
			}
		})
	}
}

func TestCombatMenuHighlightsSelection(t *testing.T) {
	w, sys, menu, in := newMenuWorld(t)
	in.RightPressed = true
	sys.Update(w)
	if menu.Selected != component.MenuSwap {
		t.Fatalf("selected = %v", menu.Selected)
	}

	ui, _ := prefabs.LoadUISpec()
	ecs.ForEach(w, component.CombatButtonComponent.Kind(), func(button ecs.Entity, cb *component.CombatButton) {
		panel := ecs.Children(w, button)[0]
		want := ui.Menu.Idle.NRGBA
		if cb.Option == component.MenuSwap {
			want = ui.Menu.Highlight.NRGBA
		}
		for _, cell := range ecs.Children(w, panel) {
			s, _ := ecs.Get(w, cell, component.SpriteComponent.Kind())
			if s.Color != want {
				t.Fatalf("%v panel color = %v, want %v", cb.Option, s.Color, want)
			}
		}
	})
}

func TestCombatMenuFollowsSpecEdits(t *testing.T) {
	ui, err := prefabs.LoadUISpec()
	if err != nil {
		t.Fatalf("ui spec: %v", err)
	}
	w := ecs.NewWorld()
	w.SetDelta(1.0 / common.TPS)
	if _, err := entity.SpawnCombatMenu(w, ui); err != nil {
		t.Fatalf("SpawnCombatMenu: %v", err)
	}
	sys := NewCombatMenuSystem(&ui.Menu)
	sys.Update(w)

	edited := *ui
	edited.Menu.Highlight = prefabs.YAMLColor{NRGBA: color.NRGBA{R: 1, G: 2, B: 3, A: 255}}
	*ui = edited
	sys.Update(w)

	ecs.ForEach(w, component.CombatButtonComponent.Kind(), func(button ecs.Entity, cb *component.CombatButton) {
		if cb.Option != component.MenuFight {
			return
		}
		panel := ecs.Children(w, button)[0]
		for _, cell := range ecs.Children(w, panel) {
			s, _ := ecs.Get(w, cell, component.SpriteComponent.Kind())
			if s.Color != edited.Menu.Highlight.NRGBA {
				t.Fatalf("highlight = %v, want edited %v", s.Color, edited.Menu.Highlight.NRGBA)
			}
		}
	})
}

func TestEncounterFollowsSpecEdits(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnTestPlayer(t, w, 0, 0)
	spawnTestTile(t, w, 10, 0, func(e ecs.Entity) {
		mustAdd(t, w, e, component.DoorComponent.Kind(), &component.Door{Path: "house.txt"})
	})
	spec := &prefabs.EncounterSpec{FadeSeconds: 1, DoorFadeSeconds: 0.5}
	sys := NewEncounterSystem(rand.New(rand.NewSource(1)), spec)

	*spec = prefabs.EncounterSpec{FadeSeconds: 1, DoorFadeSeconds: 2}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.JustMoved = true
	sys.Update(w)

	fades := ecs.Query(w, component.ScreenFadeComponent.Kind())
	if len(fades) != 1 {
		t.Fatalf("fades = %d, want 1", len(fades))
	}
	fade, _ := ecs.Get(w, fades[0], component.ScreenFadeComponent.Kind())
	if fade.Duration != 2 {
		t.Fatalf("door fade duration = %v, want edited 2", fade.Duration)
	}
}

func TestCombatMenuConfirm(t *testing.T) {
	t.Run("fight sends an action", func(t *testing.T) {
		w, sys, _, in := newMenuWorld(t)
		in.Confirm = true
		sys.Update(w)
		if n := len(ecs.Query(w, component.FightActionComponent.Kind())); n != 1 {
			t.Fatalf("fight actions = %d", n)
		}
	})

	t.Run("run requests the overworld", func(t *testing.T) {
		w, sys, _, in := newMenuWorld(t)
		in.LeftPressed, in.Confirm = true, true
		sys.Update(w)
		reqs := ecs.Query(w, component.ModeChangeRequestComponent.Kind())
		if len(reqs) != 1 {
			t.Fatalf("mode requests = %d", len(reqs))
		}
		req, _ := ecs.Get(w, reqs[0], component.ModeChangeRequestComponent.Kind())
		if req.Mode != component.ModeOverworld {
			t.Fatalf("mode = %v", req.Mode)
		}
	})

	t.Run("swap slides away and back", func(t *testing.T) {
		w, sys, menu, in := newMenuWorld(t)
		in.RightPressed, in.Confirm = true, true
		sys.Update(w)
		if menu.Active {
			t.Fatalf("swap should deactivate the menu")
		}

		*in = component.Input{}
		for i := 0; i < 2*common.TPS; i++ {
			sys.Update(w)
		}
		if menu.SlideOffset <= 0 {
			t.Fatalf("menu did not slide away: offset %v", menu.SlideOffset)
		}

		in.RightPressed = true
		sys.Update(w)
		if menu.Selected != component.MenuSwap {
			t.Fatalf("inactive menu changed selection to %v", menu.Selected)
		}

		*in = component.Input{Confirm: true}
		sys.Update(w)
		*in = component.Input{}
		for i := 0; i < 2*common.TPS; i++ {
			sys.Update(w)
		}
		if !menu.Active || menu.SlideOffset != 0 {
			t.Fatalf("menu should be back: active=%v offset=%v", menu.Active, menu.SlideOffset)
		}
	})
}

func TestFightDefeatsEnemy(t *testing.T) {
	spec, err := prefabs.LoadEnemyTableSpec()
	if err != nil {
		t.Fatalf("enemy spec: %v", err)
	}
	w := ecs.NewWorld()
	enemyEnt, err := entity.SpawnEnemy(w, spec, component.Enemy{Type: component.EnemyBat, Glyph: 'b', Health: 1, Exp: 3})
	if err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	action := ecs.CreateEntity(w)
	mustAdd(t, w, action, component.FightActionComponent.Kind(), &component.FightAction{})

	NewFightSystem(nil).Update(w)

	if ecs.IsAlive(w, action) {
		t.Fatalf("fight action should be consumed")
	}
	enemy, _ := ecs.Get(w, enemyEnt, component.EnemyComponent.Kind())
	if enemy.Health != 0 {
		t.Fatalf("health = %d, want 0", enemy.Health)
	}
	text, _ := entity.FindText(w, component.HealthTextID)
	if at, _ := ecs.Get(w, text, component.AsciiTextComponent.Kind()); at.Text != "Health: 0" {
		t.Fatalf("health text = %q", at.Text)
	}

	reqs := ecs.Query(w, component.ModeChangeRequestComponent.Kind())
	if len(reqs) != 1 {
		t.Fatalf("mode requests = %d, want 1", len(reqs))
	}
	if req, _ := ecs.Get(w, reqs[0], component.ModeChangeRequestComponent.Kind()); req.Mode != component.ModeOverworld {
		t.Fatalf("mode = %v", req.Mode)
	}

	clips := ecs.Query(w, component.AudioRequestComponent.Kind())
	if len(clips) != 1 {
		t.Fatalf("audio requests = %d", len(clips))
	}
	if req, _ := ecs.Get(w, clips[0], component.AudioRequestComponent.Kind()); req.Clip != HitClip {
		t.Fatalf("clip = %q", req.Clip)
	}
}

func TestFightKeepsBattleGoingWhileHealthRemains(t *testing.T) {
	spec, err := prefabs.LoadEnemyTableSpec()
	if err != nil {
		t.Fatalf("enemy spec: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.SpawnEnemy(w, spec, component.Enemy{Type: component.EnemyZombie, Glyph: 'Z', Health: 5}); err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	script, err := LoadDamageScript(spec.Script)
	if err != nil {
		t.Fatalf("LoadDamageScript: %v", err)
	}
	sys := NewFightSystem(script)
	for i := 0; i < 2; i++ {
		a := ecs.CreateEntity(w)
		mustAdd(t, w, a, component.FightActionComponent.Kind(), &component.FightAction{})
		sys.Update(w)
	}

	text, _ := entity.FindText(w, component.HealthTextID)
	if at, _ := ecs.Get(w, text, component.AsciiTextComponent.Kind()); at.Text != "Health: 3" {
		t.Fatalf("health text = %q", at.Text)
	}
	if n := len(ecs.Query(w, component.ModeChangeRequestComponent.Kind())); n != 0 {
		t.Fatalf("battle ended early")
	}
}

func TestDamageScript(t *testing.T) {
	enemy := component.Enemy{Type: component.EnemyGiant, Health: 20}
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"uses inputs", `damage := enemy_health / 4`, 5},
		{"branches on type", "damage := 1\nif enemy_type == \"giant\" {\n\tdamage = 3\n}", 3},
		{"missing output", `x := 2`, DefaultDamage},
		{"wrong type", `damage := "lots"`, DefaultDamage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDamageScript(tt.name, []byte(tt.src))
			if err != nil {
				t.Fatalf("NewDamageScript: %v", err)
			}
			if got := ds.Damage(enemy); got != tt.want {
				t.Fatalf("Damage = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := NewDamageScript("broken", []byte(`damage := (`)); err == nil {
		t.Fatalf("expected compile error")
	}
	var none *DamageScript
	if got := none.Damage(enemy); got != DefaultDamage {
		t.Fatalf("nil script damage = %d", got)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spawnTestPlayer(t, w, 64, -96)
	cam, err := entity.NewCamera(w)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	NewCameraSystem().Update(w)
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if tr.X != 64 || tr.Y != -96 {
		t.Fatalf("camera at %v,%v", tr.X, tr.Y)
	}

	entity.CenterCamera(w, 0, 0)
	NewCameraSystem().Update(w)
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("centered camera moved to %v,%v", tr.X, tr.Y)
	}
}

func TestAnimationCyclesWhileMoving(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(0.1)
	player := spawnTestPlayer(t, w, 0, 0)
	mustAdd(t, w, player, component.AnimatedSpriteComponent.Kind(), &component.AnimatedSprite{
		Frames:       map[component.Facing][]int{component.FacingDown: {1, 2}},
		FrameSeconds: 0.1,
	})
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	s, _ := ecs.Get(w, player, component.SpriteComponent.Kind())
	sys := NewAnimationSystem()

	want := []int{2, 1, 2}
	for i, g := range want {
		p.JustMoved = true
		sys.Update(w)
		if s.Glyph != g {
			t.Fatalf("tick %d: glyph = %d, want %d", i, s.Glyph, g)
		}
	}

	p.JustMoved = false
	sys.Update(w)
	if s.Glyph != 1 {
		t.Fatalf("idle glyph = %d, want first frame", s.Glyph)
	}
}
