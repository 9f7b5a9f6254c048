package system

import (
	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// PursuitSystem steers pursuers towards their targets. It must run after the
// systems that move the targets.
type PursuitSystem struct{}

func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

func (s *PursuitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.PursuerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, p *component.Pursuer, t *component.Transform, v *component.Velocity) {
		target := ecs.Entity(p.Target)
		if !w.IsAlive(target) {
			if e, ok := w.First(component.NoiseWalkerComponent.Kind()); ok {
				target = e
				p.Target = uint64(e)
			}
		}
		pos, ok := NoiseWalkerPosition(w, target)
		StepPursuer(p, t, v, pos, ok)
	})
}

// StepPursuer advances one pursuer by a frame. Without a target position, or
// when already on top of it, the acceleration is zero and the pursuer coasts.
func StepPursuer(p *component.Pursuer, t *component.Transform, v *component.Velocity, target r2.Point, hasTarget bool) {
	pos := r2.Point{X: t.X, Y: t.Y}

	p.Acceleration = r2.Point{}
	if hasTarget {
		p.Acceleration = common.SetMag(target.Sub(pos), p.Accel)
	}

	v.Point = common.ClampMag(v.Point.Add(p.Acceleration), p.MaxSpeed)
	pos = pos.Add(v.Point)

	t.X, t.Y = pos.X, pos.Y
	t.Rotation = common.AngleBetween(p.Up, v.Point)
}
