package component

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Ring is one filled circle of a TargetRings stack.
type Ring struct {
	Diameter    float64
	Fill        color.Color
	StrokeWidth float64
	Stroke      color.Color
}

// TargetRings draws concentric circles centred on the transform, outermost
// first.
type TargetRings struct {
	Rings []Ring
}

var TargetRingsComponent = NewComponent[TargetRings]()

// Polygon is a filled shape in the entity's local space. It is drawn
// translated to the transform position and rotated by its rotation.
type Polygon struct {
	Points      []r2.Point
	Fill        color.Color
	StrokeWidth float64
	Stroke      color.Color
}

var PolygonComponent = NewComponent[Polygon]()
