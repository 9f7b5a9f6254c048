package system

import (
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// BoundsSystem copies the current layout size onto the scene's Bounds so a
// resized window changes where noise walkers can go.
type BoundsSystem struct {
	size func() (float64, float64)
}

func NewBoundsSystem(size func() (float64, float64)) *BoundsSystem {
	return &BoundsSystem{size: size}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if s == nil || s.size == nil || w == nil {
		return
	}
	width, height := s.size()
	if width <= 0 || height <= 0 {
		return
	}
	ecs.ForEach(w, component.BoundsComponent.Kind(), func(_ ecs.Entity, b *component.Bounds) {
		b.Width = width
		b.Height = height
	})
}

// SceneBounds returns the scene bounds, or the zero Bounds when there is no
// scene entity.
func SceneBounds(w *ecs.World) component.Bounds {
	e, ok := w.First(component.BoundsComponent.Kind())
	if !ok {
		return component.Bounds{}
	}
	b, ok := ecs.Get(w, e, component.BoundsComponent.Kind())
	if !ok {
		return component.Bounds{}
	}
	return *b
}
