package render

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Surface is the 2D drawing capability systems render through. Coordinates
// passed to the shape methods are in the local space of the current
// Transform; the surface maps them to screen space.
type Surface interface {
	Transform() *Transform

	Clear(c color.Color)
	FillCircle(center r2.Point, radius float64, c color.Color)
	StrokeCircle(center r2.Point, radius, width float64, c color.Color)
	FillPolygon(points []r2.Point, c color.Color)
	StrokePolygon(points []r2.Point, width float64, c color.Color)
}
