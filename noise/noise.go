// Package noise provides deterministic, smooth 1D noise fields in [0,1].
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Field is a smooth pseudo-random function of one variable. At is
// deterministic for a given field and returns values in [0,1].
type Field interface {
	At(x float64) float64
}

// Func adapts a plain function to a Field.
type Func func(x float64) float64

func (f Func) At(x float64) float64 {
	return clamp01(f(x))
}

// Params configures a Perlin field. Alpha is the per-octave amplitude
// divisor and Beta the per-octave frequency multiplier.
type Params struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// DefaultParams matches the usual sketch defaults: four octaves, each half
// the amplitude and twice the frequency of the last.
func DefaultParams() Params {
	return Params{Seed: 1, Alpha: 2, Beta: 2, Octaves: 4}
}

// withDefaults fills zero fields from DefaultParams. A zero seed is kept.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Alpha <= 0 {
		p.Alpha = d.Alpha
	}
	if p.Beta <= 0 {
		p.Beta = d.Beta
	}
	if p.Octaves <= 0 {
		p.Octaves = d.Octaves
	}
	return p
}

// latticeShift moves samples off the integer lattice. Gradient noise is zero
// at every lattice point, so cursors seeded at whole numbers would otherwise
// all start at exactly 0.5.
const latticeShift = 0.3819660112501051

// Perlin is a Field backed by gradient noise.
type Perlin struct {
	params Params
	gen    *perlin.Perlin
}

func NewPerlin(p Params) *Perlin {
	p = p.withDefaults()
	return &Perlin{
		params: p,
		gen:    perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, p.Seed),
	}
}

func (p *Perlin) Params() Params {
	return p.params
}

// At maps the generator's signed output into [0,1].
func (p *Perlin) At(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0.5
	}
	return clamp01((p.gen.Noise1D(x+latticeShift) + 1) / 2)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0.5
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
