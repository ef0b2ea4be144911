package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/levels"
)

func main() {
	log.SetPrefix("monsterfighter: ")

	debug := flag.Bool("debug", false, "enable debug overlay, hot reload and inspector keys")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mapName := flag.String("map", levels.StartMap, "start map in levels/ (.txt optional)")
	seed := flag.Int64("seed", 0, "random seed for encounters (0 = time based)")
	volume := flag.Float64("volume", -1, "global volume in [0,1] (default from prefabs/audio.yaml)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("monster fighter")
	ebiten.SetTPS(common.TPS)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := NewGame(Config{
		Map:    *mapName,
		Debug:  *debug,
		Seed:   *seed,
		Volume: *volume,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
