package component

import "image/color"

// Bounds is the size of the drawing surface the scene runs on.
type Bounds struct {
	Width  float64
	Height float64
}

var BoundsComponent = NewComponent[Bounds]()

// Background is the colour the surface is cleared to each frame.
type Background struct {
	Color color.Color
}

var BackgroundComponent = NewComponent[Background]()
