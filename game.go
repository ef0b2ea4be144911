package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/backend"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/ecs/system"
	"github.com/milk9111/monsterfighter/levels"
	"github.com/milk9111/monsterfighter/mode"
	"github.com/milk9111/monsterfighter/prefabs"
	"github.com/milk9111/monsterfighter/scene"
)

type Config struct {
	Map    string
	Debug  bool
	Seed   int64
	Volume float64 // negative means use the prefab volume
}

type Game struct {
	world *ecs.World
	modes *mode.Machine
	rng   *rand.Rand

	always     *ecs.Scheduler
	schedulers map[mode.Mode]*ecs.Scheduler
	render     *backend.RenderSystem
	audio      *backend.AudioSystem
	fight      *system.FightSystem

	specs *scene.Specs

	currentMap *levels.Map

	debug     bool
	paused    bool
	quit      bool
	pauseUI   *ebitenui.UI
	inspector *inspector
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		world: ecs.NewWorld(),
		modes: mode.NewMachine(mode.Overworld),
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		debug: cfg.Debug,
	}
	specs, err := scene.LoadSpecs()
	if err != nil {
		return nil, err
	}
	g.specs = specs

	audioSpec, err := prefabs.LoadAudioSpec()
	if err != nil {
		return nil, err
	}
	volume := audioSpec.Volume
	if cfg.Volume >= 0 {
		volume = cfg.Volume
	}

	script, err := system.LoadDamageScript(specs.EnemyTable.Script)
	if err != nil {
		log.Printf("combat script unavailable, using default damage: %v", err)
	}

	g.render = backend.NewRenderSystem()
	g.audio = backend.NewAudioSystem(audioSpec, volume)
	g.fight = system.NewFightSystem(script)

	g.always = ecs.NewScheduler(
		backend.NewInputSystem(),
		system.NewScreenFadeSystem(),
		g.audio,
	)
	g.schedulers = scene.Schedulers(specs, g.rng, g.fight)
	scene.Register(g.modes, specs, g.rng)

	if _, err := entity.NewCamera(g.world); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(g.world, specs.Player, specs.Encounter, g.rng); err != nil {
		return nil, err
	}
	m, err := levels.Load(cfg.Map)
	if err != nil {
		return nil, err
	}
	if _, err := entity.LoadMap(g.world, m); err != nil {
		return nil, err
	}
	g.currentMap = m

	g.pauseUI = NewPauseUI(g)
	if g.debug {
		g.inspector = newInspector(g)
	}
	return g, nil
}

func (g *Game) Close() {
	if g.inspector != nil {
		g.inspector.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
		}
		return nil
	}

	g.world.SetDelta(1.0 / common.TPS)
	g.always.Update(g.world)

	if in := g.input(); in != nil && in.Pause {
		g.paused = true
		return nil
	}

	if s := g.schedulers[g.modes.Current()]; s != nil {
		s.Update(g.world)
	}

	m, err := scene.ApplyLevelChanges(g.world, g.modes.Current())
	if err != nil {
		log.Fatalf("level change: %v", err)
	}
	if m != nil {
		g.currentMap = m
	}
	g.modes.Collect(g.world)
	if _, err := g.modes.Apply(g.world); err != nil {
		log.Fatalf("mode change: %v", err)
	}

	if g.inspector != nil {
		g.inspector.Update()
	}
	return nil
}

func (g *Game) input() *component.Input {
	e, ok := ecs.First(g.world, component.InputComponent.Kind())
	if !ok {
		return nil
	}
	in, _ := ecs.Get(g.world, e, component.InputComponent.Kind())
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	col, row := g.playerCell()
	name := ""
	if g.currentMap != nil {
		name = g.currentMap.Name
	}
	return fmt.Sprintf("FPS: %.2f\nmode: %s\nmap: %s\ntile: %d,%d", ebiten.ActualFPS(), g.modes.Current(), name, col, row)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
