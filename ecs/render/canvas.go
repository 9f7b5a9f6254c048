package render

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a Surface backed by an ebiten image, usually the screen passed to
// Game.Draw.
type Canvas struct {
	dst       *ebiten.Image
	transform Transform
	AntiAlias bool
}

func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, AntiAlias: true}
}

// Reset retargets the canvas and clears its transform.
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.transform.Reset()
}

func (c *Canvas) Transform() *Transform {
	return &c.transform
}

func (c *Canvas) Clear(clr color.Color) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(clr)
}

// FillCircle maps only the centre through the transform; circles are drawn
// unscaled.
func (c *Canvas) FillCircle(center r2.Point, radius float64, clr color.Color) {
	if c.dst == nil || radius <= 0 {
		return
	}
	p := c.transform.Apply(center)
	vector.FillCircle(c.dst, float32(p.X), float32(p.Y), float32(radius), clr, c.AntiAlias)
}

func (c *Canvas) StrokeCircle(center r2.Point, radius, width float64, clr color.Color) {
	if c.dst == nil || radius <= 0 || width <= 0 {
		return
	}
	p := c.transform.Apply(center)
	vector.StrokeCircle(c.dst, float32(p.X), float32(p.Y), float32(radius), float32(width), clr, c.AntiAlias)
}

func (c *Canvas) FillPolygon(points []r2.Point, clr color.Color) {
	path := c.path(points)
	if path == nil {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: c.AntiAlias}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, path, &vector.FillOptions{}, op)
}

func (c *Canvas) StrokePolygon(points []r2.Point, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	path := c.path(points)
	if path == nil {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: c.AntiAlias}
	op.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(c.dst, path, &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinMiter, MiterLimit: 10}, op)
}

func (c *Canvas) path(points []r2.Point) *vector.Path {
	if c.dst == nil || len(points) < 3 {
		return nil
	}
	var path vector.Path
	for i, pt := range points {
		p := c.transform.Apply(pt)
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}
