package render

import (
	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
)

// Transform is an affine save/restore stack. Translate and Rotate act on the
// local space, so a Translate followed by a Rotate rotates about the
// translated origin.
type Transform struct {
	current ebiten.GeoM
	saved   []ebiten.GeoM
}

// Push saves the current matrix.
func (t *Transform) Push() {
	t.saved = append(t.saved, t.current)
}

// Pop restores the matrix saved by the matching Push. It reports false when
// there is nothing to restore and leaves the transform untouched.
func (t *Transform) Pop() bool {
	n := len(t.saved)
	if n == 0 {
		return false
	}
	t.current = t.saved[n-1]
	t.saved = t.saved[:n-1]
	return true
}

// Scoped runs fn between a Push and a Pop.
func (t *Transform) Scoped(fn func()) {
	t.Push()
	defer t.Pop()
	fn()
}

// Depth is the number of unmatched Push calls.
func (t *Transform) Depth() int {
	return len(t.saved)
}

func (t *Transform) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	t.local(m)
}

func (t *Transform) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	t.local(m)
}

// Reset clears the matrix and the saved stack.
func (t *Transform) Reset() {
	t.current.Reset()
	t.saved = t.saved[:0]
}

// Apply maps a local point to screen space.
func (t *Transform) Apply(p r2.Point) r2.Point {
	x, y := t.current.Apply(p.X, p.Y)
	return r2.Point{X: x, Y: y}
}

// local prepends m so it is applied before everything already on the matrix.
func (t *Transform) local(m ebiten.GeoM) {
	m.Concat(t.current)
	t.current = m
}
