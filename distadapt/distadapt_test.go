package distadapt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct{ n uint64 }

func (c *counter) Step() uint64 {
	c.n++
	return c.n
}

func TestEngineSourceDelegatesToUniformCO64(t *testing.T) {
	s := &counter{}
	a := EngineSource{Engine: s}
	v := a.Uniform()
	require.GreaterOrEqual(t, v, 0.0)
	require.Less(t, v, 1.0)
}

func TestEngineSourceSatisfiesUniformSource(t *testing.T) {
	var _ UniformSource = EngineSource{Engine: &counter{}}
}

func TestDistributionFuncDelegatesToUnderlyingFunc(t *testing.T) {
	var called bool
	var seen UniformSource
	fn := DistributionFunc(func(u UniformSource) float64 {
		called = true
		seen = u
		return 42
	})
	var d Distribution = fn
	src := EngineSource{Engine: &counter{}}
	got := d.Sample(src)
	require.True(t, called)
	require.Equal(t, src, seen)
	require.Equal(t, 42.0, got)
}

func TestEngineSourceUsesDistinctDrawsAcrossCalls(t *testing.T) {
	s := &counter{}
	a := EngineSource{Engine: s}
	first := a.Uniform()
	second := a.Uniform()
	require.NotEqual(t, first, second)
}
