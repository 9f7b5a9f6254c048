package main

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/system"
)

func TestGameRunsFrames(t *testing.T) {
	g, err := NewGame(Options{Width: 800, Height: 600, Seed: 42})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	defer g.Close()

	for i := 0; i < 600; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		v, ok := ecs.Get(g.world, g.scene.Walker, component.VelocityComponent.Kind())
		if !ok {
			t.Fatalf("walker lost its velocity")
		}
		if v.Norm() > 3+1e-9 || math.IsNaN(v.X) || math.IsNaN(v.Y) {
			t.Fatalf("frame %d: bad velocity %v", i, v.Point)
		}
	}
	if g.frames != 600 {
		t.Fatalf("expected 600 frames, got %d", g.frames)
	}
}

func TestGameLayoutResizesSurface(t *testing.T) {
	g, err := NewGame(Options{Width: 800, Height: 600, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}

	if w, h := g.LayoutF(1024, 768); w != 1024 || h != 768 {
		t.Fatalf("layout returned %vx%v", w, h)
	}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if b := system.SceneBounds(g.world); b.Width != 1024 || b.Height != 768 {
		t.Fatalf("bounds not following layout: %+v", b)
	}
}

func TestGameSeedOverride(t *testing.T) {
	a, err := NewGame(Options{Width: 800, Height: 600, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGame(Options{Width: 800, Height: 600, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		_ = a.Update()
		_ = b.Update()
	}
	ta, _ := ecs.Get(a.world, a.scene.Walker, component.TransformComponent.Kind())
	tb, _ := ecs.Get(b.world, b.scene.Walker, component.TransformComponent.Kind())
	if *ta != *tb {
		t.Fatalf("same seed diverged: %+v vs %+v", *ta, *tb)
	}

	prefab, err := NewGame(Options{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	if a.noise.Seed != 7 {
		t.Fatalf("seed override not applied, noise built with seed %d", a.noise.Seed)
	}
	if prefab.noise.Seed == 7 {
		t.Fatalf("scene prefab seed should be used without an override")
	}
	for i := 0; i < 50; i++ {
		_ = prefab.Update()
	}
	pa, _ := ecs.Get(a.world, a.scene.Target, component.TransformComponent.Kind())
	pp, _ := ecs.Get(prefab.world, prefab.scene.Target, component.TransformComponent.Kind())
	if *pa == *pp {
		t.Fatalf("seed 7 and the prefab seed moved the target identically: %+v", *pa)
	}
}

func TestGameSpawnsAtLaidOutCentre(t *testing.T) {
	g, err := NewGame(Options{Width: 1920, Height: 1080, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	g.LayoutF(640, 480)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}

	tr, _ := ecs.Get(g.world, g.scene.Walker, component.TransformComponent.Kind())
	v, _ := ecs.Get(g.world, g.scene.Walker, component.VelocityComponent.Kind())
	start := r2.Point{X: tr.X, Y: tr.Y}.Sub(v.Point)
	if math.Abs(start.X-320) > 1e-9 || math.Abs(start.Y-240) > 1e-9 {
		t.Fatalf("walker started at %v, want the centre of 640x480", start)
	}
}

func TestGameReloadClearsPreviousWorld(t *testing.T) {
	g, err := NewGame(Options{Width: 800, Height: 600, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	old := g.world
	if err := g.load(); err != nil {
		t.Fatal(err)
	}
	if g.world == old {
		t.Fatalf("reload kept the old world")
	}
	if n := len(ecs.Entities(old)); n != 0 {
		t.Fatalf("old world still holds %d entities", n)
	}
	if n := len(ecs.Entities(g.world)); n != 3 {
		t.Fatalf("expected 3 entities after reload, got %d", n)
	}
}

func TestNewGameBadScene(t *testing.T) {
	if _, err := NewGame(Options{ScenePath: "missing.yaml", Width: 800, Height: 600}); err == nil {
		t.Fatalf("expected error for a missing scene")
	}
}
