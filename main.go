package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "noise seed (0 uses the scene prefab's)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when they change")
	scene := flag.String("scene", defaultScene, "scene prefab")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("pursuit")

	game, err := NewGame(Options{
		ScenePath: *scene,
		Width:     float64(w),
		Height:    float64(h),
		Seed:      *seed,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("prefabs: close watcher: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
