package component

// Transform places an entity on the surface. Rotation is in radians and turns
// clockwise on screen, since y grows downwards.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
