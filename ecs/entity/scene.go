package entity

import (
	"fmt"

	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/noise"
	"github.com/milk9111/pursuit/prefabs"
)

// Scene is the result of BuildScene.
type Scene struct {
	Entity ecs.Entity
	Walker ecs.Entity
	Target ecs.Entity
	Noise  noise.Params
}

// BuildScene creates the scene entity from the scene prefab and spawns the
// walker at the centre of a width x height surface. Zero sizes fall back to
// the prefab's.
func BuildScene(w *ecs.World, scenePath string, width, height float64) (Scene, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return Scene{}, fmt.Errorf("build scene: %w", err)
	}
	if width <= 0 || height <= 0 {
		width, height = spec.Width, spec.Height
	}
	if width <= 0 || height <= 0 {
		return Scene{}, fmt.Errorf("build scene: %q: surface size unknown", scenePath)
	}
	if spec.Walker == "" {
		return Scene{}, fmt.Errorf("build scene: %q: no walker prefab", scenePath)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BoundsComponent.Kind(), &component.Bounds{Width: width, Height: height}); err != nil {
		return Scene{}, fmt.Errorf("build scene: %w", err)
	}
	if spec.Background != nil {
		if err := ecs.Add(w, e, component.BackgroundComponent.Kind(), &component.Background{Color: spec.Background.Color}); err != nil {
			return Scene{}, fmt.Errorf("build scene: %w", err)
		}
	}

	walker, err := NewAimedWalker(w, spec.Walker, width/2, height/2)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return Scene{}, fmt.Errorf("build scene: %w", err)
	}

	scene := Scene{Entity: e, Walker: walker, Noise: spec.Noise}
	if p, ok := ecs.Get(w, walker, component.PursuerComponent.Kind()); ok {
		scene.Target = ecs.Entity(p.Target)
	}
	return scene, nil
}

// NewAimedWalker builds a pursuer, and the target its prefab names, with the
// pursuer placed at (x, y).
func NewAimedWalker(w *ecs.World, prefabPath string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.PursuerComponent.Kind()) {
		destroyBuilt(w, e)
		return 0, fmt.Errorf("aimed walker: prefab %q has no pursuer", prefabPath)
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, err
	}
	return e, nil
}

func NewPerlinWalker(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.NoiseWalkerComponent.Kind()) {
		destroyBuilt(w, e)
		return 0, fmt.Errorf("perlin walker: prefab %q has no noise walker", prefabPath)
	}
	return e, nil
}
