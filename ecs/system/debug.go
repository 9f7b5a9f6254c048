package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// PursuitDebugText describes the first pursuer, or returns "" without one.
func PursuitDebugText(w *ecs.World) string {
	if w == nil {
		return ""
	}
	e, ok := w.First(component.PursuerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind())
	if !ok {
		return ""
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	p, _ := ecs.Get(w, e, component.PursuerComponent.Kind())

	text := fmt.Sprintf("Pursuer: (%.1f, %.1f)\nSpeed: %.3f / %.1f\nFacing: %.1f deg", t.X, t.Y, v.Norm(), p.MaxSpeed, t.Rotation*180/math.Pi)
	if target, ok := NoiseWalkerPosition(w, ecs.Entity(p.Target)); ok {
		text += fmt.Sprintf("\nTarget: (%.1f, %.1f)", target.X, target.Y)
	}
	return text
}

func DrawPursuitDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	text := fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS())
	if s := PursuitDebugText(w); s != "" {
		text += "\n" + s
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
