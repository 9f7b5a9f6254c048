package component

import "github.com/golang/geo/r2"

// Pursuer steers its entity towards Target with a fixed-magnitude
// acceleration and a capped speed.
type Pursuer struct {
	Target   uint64 // ecs.Entity
	Accel    float64
	MaxSpeed float64
	// Up is the reference direction the facing angle is measured from.
	Up r2.Point

	// Acceleration is the value applied on the last update.
	Acceleration r2.Point
}

var PursuerComponent = NewComponent[Pursuer]()
