// Package catalog loads the module's named engine-parameter sets from
// embedded YAML assets at init() time, the data-driven equivalent of the
// static const parameter_type literals a C++ template library bakes in as
// compile-time constants. Numeric values are transcribed byte-for-byte
// from the literature this module's algorithms were distilled from.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed mrg.yaml
var mrgYAML []byte

//go:embed yarn.yaml
var yarnYAML []byte

//go:embed lcg64.yaml
var lcg64YAML []byte

//go:embed count128.yaml
var count128YAML []byte

//go:embed lagfib.yaml
var lagfibYAML []byte

// MRGParameterSet is one named coefficient vector for a given MRG order.
type MRGParameterSet struct {
	Name string  `yaml:"name"`
	A    []int64 `yaml:"a"`
}

// MRGOrder groups the named parameter sets sharing one modulus and order.
type MRGOrder struct {
	Modulus int64             `yaml:"modulus"`
	Sets    []MRGParameterSet `yaml:"sets"`
}

type mrgDoc struct {
	Order2      MRGOrder `yaml:"order2"`
	Order3      MRGOrder `yaml:"order3"`
	Order3Split MRGOrder `yaml:"order3split"`
	Order4      MRGOrder `yaml:"order4"`
	Order5      MRGOrder `yaml:"order5"`
	Order5Split MRGOrder `yaml:"order5split"`
}

// YarnOrder groups the named parameter sets sharing one modulus, order and
// discrete-log generator (the base of the two-level power table).
type YarnOrder struct {
	Modulus int64             `yaml:"modulus"`
	Gen     int64             `yaml:"gen"`
	Sets    []MRGParameterSet `yaml:"sets"`
}

// Find returns the named parameter set within a YarnOrder, or ok=false.
func (o YarnOrder) Find(name string) (MRGParameterSet, bool) {
	for _, s := range o.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return MRGParameterSet{}, false
}

type yarnDoc struct {
	Order3      YarnOrder `yaml:"order3"`
	Order4      YarnOrder `yaml:"order4"`
	Order5      YarnOrder `yaml:"order5"`
	Order3Split YarnOrder `yaml:"order3split"`
	Order5Split YarnOrder `yaml:"order5split"`
}

// LCG64ParameterSet is one named (a, b) pair for the LCG64 family.
type LCG64ParameterSet struct {
	Name string `yaml:"name"`
	A    uint64 `yaml:"a"`
	B    uint64 `yaml:"b"`
}

type lcg64Doc struct {
	Sets []LCG64ParameterSet `yaml:"sets"`
}

// Count128ParameterSet is one named scramble multiplier/increment pair for
// the count128 family.
type Count128ParameterSet struct {
	Name string `yaml:"name"`
	A    uint64 `yaml:"a"`
	B    uint64 `yaml:"b"`
}

type count128Doc struct {
	Increment struct {
		Hi uint64 `yaml:"hi"`
		Lo uint64 `yaml:"lo"`
	} `yaml:"increment"`
	Sets []Count128ParameterSet `yaml:"sets"`
}

// LagFibParameterSet is one named (A, B) lag pair.
type LagFibParameterSet struct {
	Name string `yaml:"name"`
	A    int    `yaml:"a"`
	B    int    `yaml:"b"`
}

type lagfibDoc struct {
	Sets []LagFibParameterSet `yaml:"sets"`
}

// Find returns the named lag pair within the lagged Fibonacci catalogue.
func (d lagfibDoc) Find(name string) (LagFibParameterSet, bool) {
	for _, s := range d.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return LagFibParameterSet{}, false
}

var (
	MRG      mrgDoc
	YARN     yarnDoc
	LCG64    lcg64Doc
	Count128 count128Doc
	LagFib   lagfibDoc
)

func init() {
	mustUnmarshal(mrgYAML, &MRG, "mrg.yaml")
	mustUnmarshal(yarnYAML, &YARN, "yarn.yaml")
	mustUnmarshal(lcg64YAML, &LCG64, "lcg64.yaml")
	mustUnmarshal(count128YAML, &Count128, "count128.yaml")
	mustUnmarshal(lagfibYAML, &LagFib, "lagfib.yaml")
}

func mustUnmarshal(data []byte, out interface{}, label string) {
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("catalog: malformed embedded asset %s: %v", label, err))
	}
}

// Find returns the named parameter set within an MRGOrder, or ok=false.
func (o MRGOrder) Find(name string) (MRGParameterSet, bool) {
	for _, s := range o.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return MRGParameterSet{}, false
}

// Find returns the named parameter set within the LCG64 catalogue.
func (d lcg64Doc) Find(name string) (LCG64ParameterSet, bool) {
	for _, s := range d.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return LCG64ParameterSet{}, false
}

// Find returns the named parameter set within the count128 catalogue.
func (d count128Doc) Find(name string) (Count128ParameterSet, bool) {
	for _, s := range d.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return Count128ParameterSet{}, false
}
