// Package distadapt defines the narrow collaboration surface between this
// module's engines and a caller-supplied distribution library: engines
// produce uniform bits, distributions consume them. Concrete
// distributions (normal, exponential, gamma, ...) are out of scope; this
// package only fixes the seam a distribution type would implement
// against, plus a couple of composable float adaptors built on package
// uniform.
package distadapt

import "github.com/parastream/trng/uniform"

// UniformSource is what a distribution needs from an engine: a stream of
// uniform floats on [0, 1).
type UniformSource interface {
	Uniform() float64
}

// EngineSource adapts any uniform.Source into a UniformSource.
type EngineSource struct {
	Engine uniform.Source
}

func (a EngineSource) Uniform() float64 {
	return uniform.CO64(a.Engine)
}

// Distribution is the seam a caller's distribution type implements: given
// a uniform source, produce one variate.
type Distribution interface {
	Sample(u UniformSource) float64
}

// DistributionFunc adapts a plain function to Distribution.
type DistributionFunc func(u UniformSource) float64

func (f DistributionFunc) Sample(u UniformSource) float64 { return f(u) }
