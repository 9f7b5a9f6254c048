package system

import (
	"image/color"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

type testScene struct {
	w       *ecs.World
	scene   ecs.Entity
	target  ecs.Entity
	pursuer ecs.Entity
}

// newTestScene mirrors the shipped prefabs without going through YAML.
func newTestScene(t *testing.T, width, height float64) testScene {
	t.Helper()
	w := ecs.NewWorld()

	scene := ecs.CreateEntity(w)
	must(t, ecs.Add(w, scene, component.BoundsComponent.Kind(), &component.Bounds{Width: width, Height: height}))

	target := ecs.CreateEntity(w)
	must(t, ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{}))
	must(t, ecs.Add(w, target, component.NoiseWalkerComponent.Kind(), &component.NoiseWalker{XOffset: 0, YOffset: 10000, Step: 0.001}))
	must(t, ecs.Add(w, target, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 0}))
	must(t, ecs.Add(w, target, component.TargetRingsComponent.Kind(), &component.TargetRings{Rings: []component.Ring{
		{Diameter: 20, Fill: color.White, Stroke: color.Black, StrokeWidth: 1},
		{Diameter: 15, Fill: color.RGBA{R: 255, A: 255}},
		{Diameter: 10, Fill: color.White},
		{Diameter: 5, Fill: color.RGBA{R: 255, A: 255}},
	}}))

	pursuer := ecs.CreateEntity(w)
	must(t, ecs.Add(w, pursuer, component.TransformComponent.Kind(), &component.Transform{X: width / 2, Y: height / 2}))
	must(t, ecs.Add(w, pursuer, component.VelocityComponent.Kind(), &component.Velocity{}))
	must(t, ecs.Add(w, pursuer, component.PursuerComponent.Kind(), &component.Pursuer{
		Target:   uint64(target),
		Accel:    0.01,
		MaxSpeed: 3,
		Up:       r2.Point{Y: -1},
	}))
	must(t, ecs.Add(w, pursuer, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}))
	must(t, ecs.Add(w, pursuer, component.PolygonComponent.Kind(), &component.Polygon{
		Points:      []r2.Point{{X: 0, Y: -12}, {X: -5, Y: 12}, {X: 5, Y: 12}},
		Fill:        color.RGBA{R: 0x00, G: 0x84, B: 0xFF, A: 0xFF},
		Stroke:      color.Black,
		StrokeWidth: 1,
	}))

	return testScene{w: w, scene: scene, target: target, pursuer: pursuer}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func get[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, h.Kind())
	if !ok {
		t.Fatalf("entity %v missing component", e)
	}
	return v
}
