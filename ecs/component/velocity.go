package component

import "github.com/golang/geo/r2"

// Velocity is the per-frame displacement of an entity.
type Velocity struct {
	r2.Point
}

var VelocityComponent = NewComponent[Velocity]()
