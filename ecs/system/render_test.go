package system

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/render/rendertest"
	"github.com/milk9111/pursuit/noise"
)

func TestRenderSkipsUnpositionedTarget(t *testing.T) {
	s := newTestScene(t, 800, 600)
	rec := rendertest.NewRecorder()

	NewRenderSystem().Draw(s.w, rec)

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != rendertest.OpClear {
		t.Fatalf("expected the surface to be cleared first, got %+v", rec.Ops)
	}
	if want := (color.RGBA{R: 80, G: 80, B: 80, A: 255}); rec.Ops[0].Color != want {
		t.Fatalf("expected grey 80 background, got %v", rec.Ops[0].Color)
	}
	if n := rec.Count(rendertest.OpFillCircle); n != 0 {
		t.Fatalf("target drew %d circles before its first update", n)
	}
	if n := rec.Count(rendertest.OpFillPolygon); n != 1 {
		t.Fatalf("expected the pursuer triangle, got %d polygons", n)
	}
}

func TestRenderOrderAndShapes(t *testing.T) {
	s := newTestScene(t, 800, 600)
	ecs.NewScheduler(NewNoiseWalkerSystem(noise.NewPerlin(noise.Params{Seed: 3})), NewPursuitSystem()).Update(s.w)

	rec := rendertest.NewRecorder()
	NewRenderSystem().Draw(s.w, rec)

	kinds := make([]rendertest.OpKind, 0, len(rec.Ops))
	for _, op := range rec.Ops {
		kinds = append(kinds, op.Kind)
	}
	want := []rendertest.OpKind{
		rendertest.OpClear,
		rendertest.OpFillCircle, rendertest.OpStrokeCircle,
		rendertest.OpFillCircle,
		rendertest.OpFillCircle,
		rendertest.OpFillCircle,
		rendertest.OpFillPolygon, rendertest.OpStrokePolygon,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("draw order %v, want %v", kinds, want)
	}

	targetPos, _ := NoiseWalkerPosition(s.w, s.target)
	radii := []float64{10, 10, 7.5, 5, 2.5}
	for i, r := range radii {
		op := rec.Ops[1+i]
		if op.Radius != r {
			t.Fatalf("circle %d radius %v, want %v", i, op.Radius, r)
		}
		if d := op.Points[0].Sub(targetPos); d.Norm() > 1e-9 {
			t.Fatalf("circle %d centred at %v, want %v", i, op.Points[0], targetPos)
		}
	}

	tr := get(t, s.w, s.pursuer, component.TransformComponent)
	tri := rec.Ops[6]
	if want := (color.RGBA{R: 0x00, G: 0x84, B: 0xFF, A: 0xFF}); tri.Color != want {
		t.Fatalf("triangle colour %v, want %v", tri.Color, want)
	}
	sin, cos := math.Sincos(tr.Rotation)
	tip := r2.Point{X: tr.X + 12*sin, Y: tr.Y - 12*cos}
	if d := tri.Points[0].Sub(tip); d.Norm() > 1e-9 {
		t.Fatalf("triangle tip at %v, want %v", tri.Points[0], tip)
	}
	if rec.Ops[7].Width != 1 {
		t.Fatalf("triangle stroke weight %v, want 1", rec.Ops[7].Width)
	}
}

func TestRenderRestoresTransform(t *testing.T) {
	s := newTestScene(t, 800, 600)
	ecs.NewScheduler(NewNoiseWalkerSystem(noise.NewPerlin(noise.DefaultParams())), NewPursuitSystem()).Update(s.w)

	rec := rendertest.NewRecorder()
	NewRenderSystem().Draw(s.w, rec)

	for i, op := range rec.Ops {
		if op.Kind == rendertest.OpClear {
			if op.Depth != 0 {
				t.Fatalf("clear issued inside a transform scope")
			}
			continue
		}
		if op.Depth != 1 {
			t.Fatalf("op %d (%s) drawn at depth %d, want 1", i, op.Kind, op.Depth)
		}
	}
	if d := rec.Transform().Depth(); d != 0 {
		t.Fatalf("transform stack left at depth %d", d)
	}
	if p := rec.Transform().Apply(r2.Point{X: 1, Y: 2}); p != (r2.Point{X: 1, Y: 2}) {
		t.Fatalf("transform not restored to identity, maps (1,2) to %v", p)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	s := newTestScene(t, 800, 600)
	ecs.NewScheduler(NewNoiseWalkerSystem(noise.NewPerlin(noise.DefaultParams())), NewPursuitSystem()).Update(s.w)

	before := *get(t, s.w, s.pursuer, component.TransformComponent)
	beforeVel := *get(t, s.w, s.pursuer, component.VelocityComponent)
	beforeNW := *get(t, s.w, s.target, component.NoiseWalkerComponent)

	r := NewRenderSystem()
	rec := rendertest.NewRecorder()
	r.Draw(s.w, rec)
	first := rec.Ops

	for i := 0; i < 3; i++ {
		rec.Reset()
		r.Draw(s.w, rec)
		if !reflect.DeepEqual(first, rec.Ops) {
			t.Fatalf("draw %d differs from the first", i+2)
		}
	}
	if *get(t, s.w, s.pursuer, component.TransformComponent) != before {
		t.Fatalf("draw mutated the pursuer transform")
	}
	if *get(t, s.w, s.pursuer, component.VelocityComponent) != beforeVel {
		t.Fatalf("draw mutated the pursuer velocity")
	}
	if *get(t, s.w, s.target, component.NoiseWalkerComponent) != beforeNW {
		t.Fatalf("draw mutated the noise walker")
	}
}

func TestRenderUsesSceneBackground(t *testing.T) {
	s := newTestScene(t, 800, 600)
	must(t, ecs.Add(s.w, s.scene, component.BackgroundComponent.Kind(), &component.Background{Color: color.Gray{Y: 10}}))

	rec := rendertest.NewRecorder()
	NewRenderSystem().Draw(s.w, rec)

	if want := (color.RGBA{R: 10, G: 10, B: 10, A: 255}); rec.Ops[0].Color != want {
		t.Fatalf("background %v, want %v", rec.Ops[0].Color, want)
	}
}

func TestPursuitDebugText(t *testing.T) {
	s := newTestScene(t, 800, 600)
	if PursuitDebugText(ecs.NewWorld()) != "" {
		t.Fatalf("expected empty text without a pursuer")
	}
	if PursuitDebugText(s.w) == "" {
		t.Fatalf("expected debug text for the pursuer")
	}
}
