package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mazewalker/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (path overlay, FPS, level hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "intro", "level name in levels/ (basename, .yaml optional) or a path to a level file")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("mazewalker")

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		log.Fatalf("%v (embedded levels: %s)", err, strings.Join(levels.Names(), ", "))
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
