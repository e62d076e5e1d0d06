package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/piratemaker/common"
)

func main() {
	debug := flag.Bool("debug", false, "outline colliders and log gameplay events")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	seed := flag.Int64("seed", 1, "seed for enemy directions and cloud placement")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.WindowWidth, common.WindowHeight)
	ebiten.SetWindowTitle("piratemaker")

	game, err := NewGame(Options{Debug: *debug, Watch: *watch, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
