package common

import (
	"math"

	"github.com/golang/geo/r2"
)

// SetMag returns v scaled to magnitude mag. The zero vector has no direction
// and is returned unchanged.
func SetMag(v r2.Point, mag float64) r2.Point {
	n := v.Norm()
	if n == 0 || !finite(n) {
		return r2.Point{}
	}
	return v.Mul(mag / n)
}

// ClampMag rescales v to exactly max once its magnitude reaches max. A
// vector already at the cap is rewritten to it.
func ClampMag(v r2.Point, max float64) r2.Point {
	if v.Norm() >= max {
		return SetMag(v, max)
	}
	return v
}

// AngleBetween returns the unsigned angle from a to b in [0, π]. It is 0 when
// either vector is zero.
func AngleBetween(a, b r2.Point) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	cos := a.Dot(b) / (na * nb)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
