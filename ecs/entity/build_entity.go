package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
	// depth guards against prefabs that reference each other.
	depth int
}

const maxPrefabDepth = 4

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

// componentRegistry is filled in init: addPursuer builds nested prefabs
// through buildEntity, which reads the registry.
var componentRegistry map[string]componentBuildFn

func init() {
	componentRegistry = map[string]componentBuildFn{
		"transform":    addTransform,
		"velocity":     addVelocity,
		"render_layer": addRenderLayer,
		"noise_walker": addNoiseWalker,
		"pursuer":      addPursuer,
		"target_rings": addTargetRings,
		"polygon":      addPolygon,
	}
}

var componentBuildOrder = []string{
	"transform",
	"velocity",
	"render_layer",
	"noise_walker",
	"pursuer",
	"target_rings",
	"polygon",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return buildEntity(w, prefabPath, 0)
}

func buildEntity(w *ecs.World, prefabPath string, depth int) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if depth > maxPrefabDepth {
		return 0, fmt.Errorf("build entity: %q: prefab references nest deeper than %d", prefabPath, maxPrefabDepth)
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, depth: depth}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			destroyBuilt(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		destroyBuilt(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// destroyBuilt removes a half-built entity and any target its pursuer built.
func destroyBuilt(w *ecs.World, e ecs.Entity) {
	if p, ok := ecs.Get(w, e, component.PursuerComponent.Kind()); ok && ecs.Entity(p.Target).Valid() {
		destroyBuilt(w, ecs.Entity(p.Target))
	}
	ecs.DestroyEntity(w, e)
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Point: r2.Point{X: spec.X, Y: spec.Y}})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type noiseWalkerSpec = prefabs.NoiseWalkerComponentSpec

func addNoiseWalker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[noiseWalkerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode noise walker spec: %w", err)
	}
	if spec.Step <= 0 {
		return fmt.Errorf("noise walker step must be positive, got %v", spec.Step)
	}
	return ecs.Add(w, e, component.NoiseWalkerComponent.Kind(), &component.NoiseWalker{
		XOffset: spec.XOffset,
		YOffset: spec.YOffset,
		Step:    spec.Step,
	})
}

type pursuerSpec = prefabs.PursuerComponentSpec

// addPursuer builds the target prefab as its own entity and links it.
func addPursuer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pursuerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pursuer spec: %w", err)
	}
	if spec.Accel <= 0 || spec.MaxSpeed <= 0 {
		return fmt.Errorf("pursuer accel and max_speed must be positive, got %v and %v", spec.Accel, spec.MaxSpeed)
	}
	up := r2.Point{X: 0, Y: -1}
	if spec.Up != nil {
		up = r2.Point{X: spec.Up.X, Y: spec.Up.Y}
	}
	if up.Norm() == 0 {
		return fmt.Errorf("pursuer up vector must be non-zero")
	}

	p := &component.Pursuer{
		Accel:    spec.Accel,
		MaxSpeed: spec.MaxSpeed,
		Up:       up,
	}
	if spec.Target != "" {
		target, err := buildEntity(w, spec.Target, ctx.depth+1)
		if err != nil {
			return fmt.Errorf("build target: %w", err)
		}
		p.Target = uint64(target)
	}
	if err := ecs.Add(w, e, component.PursuerComponent.Kind(), p); err != nil {
		if p.Target != 0 {
			ecs.DestroyEntity(w, ecs.Entity(p.Target))
		}
		return err
	}
	return nil
}

type targetRingsSpec = prefabs.TargetRingsComponentSpec

func addTargetRings(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[targetRingsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode target rings spec: %w", err)
	}
	rings := make([]component.Ring, 0, len(spec.Rings))
	for i, r := range spec.Rings {
		if r.Diameter <= 0 {
			return fmt.Errorf("ring %d: diameter must be positive", i)
		}
		rings = append(rings, component.Ring{
			Diameter:    r.Diameter,
			Fill:        colorOrNil(r.Fill),
			Stroke:      colorOrNil(r.Stroke),
			StrokeWidth: r.StrokeWidth,
		})
	}
	return ecs.Add(w, e, component.TargetRingsComponent.Kind(), &component.TargetRings{Rings: rings})
}

type polygonSpec = prefabs.PolygonComponentSpec

func addPolygon(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[polygonSpec](raw)
	if err != nil {
		return fmt.Errorf("decode polygon spec: %w", err)
	}
	if len(spec.Points) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d", len(spec.Points))
	}
	points := make([]r2.Point, 0, len(spec.Points))
	for _, p := range spec.Points {
		points = append(points, r2.Point{X: p.X, Y: p.Y})
	}
	return ecs.Add(w, e, component.PolygonComponent.Kind(), &component.Polygon{
		Points:      points,
		Fill:        colorOrNil(spec.Fill),
		Stroke:      colorOrNil(spec.Stroke),
		StrokeWidth: spec.StrokeWidth,
	})
}

func colorOrNil(c *prefabs.YAMLColor) color.Color {
	if c == nil {
		return nil
	}
	return c.Color
}
