// Package rendertest provides a headless render.Surface for tests.
package rendertest

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/milk9111/pursuit/ecs/render"
)

type OpKind string

const (
	OpClear         OpKind = "clear"
	OpFillCircle    OpKind = "fill_circle"
	OpStrokeCircle  OpKind = "stroke_circle"
	OpFillPolygon   OpKind = "fill_polygon"
	OpStrokePolygon OpKind = "stroke_polygon"
)

// Op is one recorded draw call. Points are already in screen space.
type Op struct {
	Kind   OpKind
	Points []r2.Point
	Radius float64
	Width  float64
	Color  color.RGBA
	// Depth is the transform stack depth at the time of the call.
	Depth int
}

// Recorder records draw calls instead of rasterizing them.
type Recorder struct {
	Ops       []Op
	transform render.Transform
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops recorded ops and the transform.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.transform.Reset()
}

func (r *Recorder) Transform() *render.Transform {
	return &r.transform
}

func (r *Recorder) Clear(c color.Color) {
	r.record(Op{Kind: OpClear, Color: rgba(c)})
}

func (r *Recorder) FillCircle(center r2.Point, radius float64, c color.Color) {
	r.record(Op{Kind: OpFillCircle, Points: r.apply(center), Radius: radius, Color: rgba(c)})
}

func (r *Recorder) StrokeCircle(center r2.Point, radius, width float64, c color.Color) {
	r.record(Op{Kind: OpStrokeCircle, Points: r.apply(center), Radius: radius, Width: width, Color: rgba(c)})
}

func (r *Recorder) FillPolygon(points []r2.Point, c color.Color) {
	r.record(Op{Kind: OpFillPolygon, Points: r.apply(points...), Color: rgba(c)})
}

func (r *Recorder) StrokePolygon(points []r2.Point, width float64, c color.Color) {
	r.record(Op{Kind: OpStrokePolygon, Points: r.apply(points...), Width: width, Color: rgba(c)})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) record(op Op) {
	op.Depth = r.transform.Depth()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) apply(points ...r2.Point) []r2.Point {
	out := make([]r2.Point, len(points))
	for i, p := range points {
		out[i] = r.transform.Apply(p)
	}
	return out
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
