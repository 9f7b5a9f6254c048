package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/entity"
	"github.com/milk9111/pursuit/ecs/render"
	"github.com/milk9111/pursuit/ecs/system"
	"github.com/milk9111/pursuit/noise"
	"github.com/milk9111/pursuit/prefabs"
)

const defaultScene = "scene.yaml"

type Options struct {
	ScenePath string
	// Width and Height are the initial surface size; the walker spawns at
	// its centre.
	Width  float64
	Height float64
	// Seed overrides the scene's noise seed when non-zero.
	Seed  int64
	Debug bool
	// Watch reloads the scene when prefab files on disk change.
	Watch bool
}

type Game struct {
	frames int
	opts   Options

	width  float64
	height float64

	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     entity.Scene
	noise     noise.Params
	// placed is false until the walker has been moved to the centre of the
	// laid-out surface.
	placed bool
	canvas    *render.Canvas
	watcher   *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	if opts.ScenePath == "" {
		opts.ScenePath = defaultScene
	}
	g := &Game{
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
		canvas: render.NewCanvas(nil),
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world and only swaps it in once everything succeeded.
func (g *Game) load() error {
	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, g.opts.ScenePath, g.width, g.height)
	if err != nil {
		return fmt.Errorf("game: load scene: %w", err)
	}

	params := scene.Noise
	if g.opts.Seed != 0 {
		params.Seed = g.opts.Seed
	}

	if g.width <= 0 || g.height <= 0 {
		b := system.SceneBounds(world)
		g.width, g.height = b.Width, b.Height
	}

	if g.world != nil {
		ecs.Clear(g.world)
	}
	g.world = world
	g.scene = scene
	g.noise = params
	g.placed = false
	g.scheduler = ecs.NewScheduler(
		system.NewBoundsSystem(g.surfaceSize),
		system.NewNoiseWalkerSystem(noise.NewPerlin(params)),
		system.NewPursuitSystem(),
		system.NewRenderSystem(),
	)
	return nil
}

func (g *Game) surfaceSize() (float64, float64) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.frames++

	g.reloadIfChanged()
	if !g.placed {
		g.placeWalker()
	}
	g.scheduler.Update(g.world)

	return nil
}

// placeWalker recentres the walker on the surface size the first layout
// reported, which can differ from the size the scene was built with.
func (g *Game) placeWalker() {
	g.placed = true
	t, ok := ecs.Get(g.world, g.scene.Walker, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.X, t.Y = g.width/2, g.height/2
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	if len(changed) == 0 {
		return
	}
	for _, name := range changed {
		log.Printf("prefabs: %s changed", filepath.Base(name))
	}
	if err := g.load(); err != nil {
		log.Printf("prefabs: reload failed, keeping current scene: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Reset(screen)
	g.scheduler.Draw(g.world, g.canvas)

	if g.opts.Debug {
		system.DrawPursuitDebug(g.world, screen)
	}
}

// LayoutF sizes the surface to the window, so the noise walker always spans
// the whole viewport.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
