package system

import (
	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/noise"
)

// NoiseWalkerSystem moves every noise walker to the point its cursors
// sample, scaled to the scene bounds.
type NoiseWalkerSystem struct {
	field noise.Field
}

func NewNoiseWalkerSystem(field noise.Field) *NoiseWalkerSystem {
	return &NoiseWalkerSystem{field: field}
}

func (s *NoiseWalkerSystem) Update(w *ecs.World) {
	if s == nil || s.field == nil || w == nil {
		return
	}
	bounds := SceneBounds(w)
	ecs.ForEach2(w, component.NoiseWalkerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, nw *component.NoiseWalker, t *component.Transform) {
		StepNoiseWalker(nw, t, s.field, bounds)
	})
}

// StepNoiseWalker samples the field at both cursors, writes the position and
// then advances the cursors by Step.
func StepNoiseWalker(nw *component.NoiseWalker, t *component.Transform, field noise.Field, b component.Bounds) {
	t.X = field.At(nw.XOffset) * b.Width
	t.Y = field.At(nw.YOffset) * b.Height
	nw.Positioned = true

	nw.XOffset += nw.Step
	nw.YOffset += nw.Step
}

// NoiseWalkerPosition returns where e is. A noise walker that has not been
// updated yet has no position.
func NoiseWalkerPosition(w *ecs.World, e ecs.Entity) (r2.Point, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return r2.Point{}, false
	}
	if nw, ok := ecs.Get(w, e, component.NoiseWalkerComponent.Kind()); ok && !nw.Positioned {
		return r2.Point{}, false
	}
	return r2.Point{X: t.X, Y: t.Y}, true
}
