package system

import (
	"image/color"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/render"
)

var defaultBackground = color.Gray{Y: 80}

// RenderSystem clears the surface and draws target rings and polygons in
// render layer order. Every entity draws inside its own transform scope.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, surface render.Surface) {
	if r == nil || w == nil || surface == nil {
		return
	}

	surface.Clear(background(w))

	entities := append(
		w.Query(component.TransformComponent.Kind(), component.TargetRingsComponent.Kind()),
		w.Query(component.TransformComponent.Kind(), component.PolygonComponent.Kind())...,
	)
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	tr := surface.Transform()
	for i, e := range entities {
		if i > 0 && entities[i-1] == e {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if nw, ok := ecs.Get(w, e, component.NoiseWalkerComponent.Kind()); ok && !nw.Positioned {
			continue
		}
		tr.Scoped(func() {
			tr.Translate(t.X, t.Y)
			if rings, ok := ecs.Get(w, e, component.TargetRingsComponent.Kind()); ok {
				drawRings(surface, rings)
			}
			if poly, ok := ecs.Get(w, e, component.PolygonComponent.Kind()); ok {
				tr.Rotate(t.Rotation)
				drawPolygon(surface, poly)
			}
		})
	}
}

func drawRings(surface render.Surface, rings *component.TargetRings) {
	for _, ring := range rings.Rings {
		radius := ring.Diameter / 2
		if ring.Fill != nil {
			surface.FillCircle(r2.Point{}, radius, ring.Fill)
		}
		if ring.StrokeWidth > 0 && ring.Stroke != nil {
			surface.StrokeCircle(r2.Point{}, radius, ring.StrokeWidth, ring.Stroke)
		}
	}
}

func drawPolygon(surface render.Surface, poly *component.Polygon) {
	if len(poly.Points) < 3 {
		return
	}
	if poly.Fill != nil {
		surface.FillPolygon(poly.Points, poly.Fill)
	}
	if poly.StrokeWidth > 0 && poly.Stroke != nil {
		surface.StrokePolygon(poly.Points, poly.StrokeWidth, poly.Stroke)
	}
}

func background(w *ecs.World) color.Color {
	e, ok := w.First(component.BackgroundComponent.Kind())
	if !ok {
		return defaultBackground
	}
	bg, ok := ecs.Get(w, e, component.BackgroundComponent.Kind())
	if !ok || bg.Color == nil {
		return defaultBackground
	}
	return bg.Color
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
