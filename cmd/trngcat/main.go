// Command trngcat drives one named engine for a fixed number of steps and
// prints its raw outputs plus its canonical serialized form, exercising
// the catalog, an engine family and the serialize package end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/parastream/trng"
	"github.com/parastream/trng/catalog"
)

func main() {
	family := flag.String("family", "mrg3", "engine family: mrg2, mrg3, yarn3, lcg64, lcg64s, count128, lagfib, xoshiro256plus, mt19937, mt19937_64")
	name := flag.String("name", "LEcuyer1", "named parameter set (ignored for xoshiro256plus/mt19937/mt19937_64)")
	n := flag.Uint64("n", 10, "number of outputs to print")
	flag.Parse()

	if err := run(*family, *name, *n); err != nil {
		fmt.Fprintln(os.Stderr, "trngcat:", err)
		os.Exit(1)
	}
}

func run(family, name string, n uint64) error {
	var eng interface {
		Step() uint64
		MarshalText() ([]byte, error)
	}

	switch family {
	case "mrg2":
		e, err := trng.NewMRG(catalog.MRG.Order2, name)
		if err != nil {
			return err
		}
		eng = e
	case "mrg3":
		e, err := trng.NewMRG(catalog.MRG.Order3, name)
		if err != nil {
			return err
		}
		eng = e
	case "yarn3":
		e, err := trng.NewYarn(catalog.YARN.Order3, name)
		if err != nil {
			return err
		}
		eng = e
	case "lcg64":
		e, err := trng.NewLCG64(name, false)
		if err != nil {
			return err
		}
		eng = e
	case "lcg64s":
		e, err := trng.NewLCG64(name, true)
		if err != nil {
			return err
		}
		eng = e
	case "count128":
		e, err := trng.NewCount128(name)
		if err != nil {
			return err
		}
		eng = e
	case "lagfib":
		e, err := trng.NewLagFibXor(name)
		if err != nil {
			return err
		}
		eng = e
	case "xoshiro256plus":
		eng = trng.NewXoshiro256Plus()
	case "mt19937":
		eng = trng.NewMT19937()
	case "mt19937_64":
		eng = trng.NewMT19937_64()
	default:
		return fmt.Errorf("unknown family %q", family)
	}

	for i := uint64(0); i < n; i++ {
		fmt.Println(eng.Step())
	}
	text, err := eng.MarshalText()
	if err != nil {
		return err
	}
	fmt.Println(string(text))
	return nil
}
