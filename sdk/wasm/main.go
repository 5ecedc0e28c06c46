//go:build js && wasm

// Package main provides WASM bindings for the trng engine library.
//
// Exports engine operations to JavaScript:
// - create(family, name) -> handle
// - step(handle) -> number
// - discard(handle, n)
// - jump(handle, n)
// - split(handle, s, n)
// - marshal(handle) -> string
// - destroy(handle)
package main

import (
	"strconv"
	"sync"
	"syscall/js"

	"github.com/parastream/trng"
	"github.com/parastream/trng/catalog"
)

var (
	mu      sync.Mutex
	nextID  int
	engines = map[int]trng.Engine{}
)

func buildEngine(family, name string) (trng.Engine, error) {
	switch family {
	case "mrg2":
		return trng.NewMRG(catalog.MRG.Order2, name)
	case "mrg3":
		return trng.NewMRG(catalog.MRG.Order3, name)
	case "mrg3split":
		return trng.NewMRG(catalog.MRG.Order3Split, name)
	case "mrg4":
		return trng.NewMRG(catalog.MRG.Order4, name)
	case "mrg5":
		return trng.NewMRG(catalog.MRG.Order5, name)
	case "mrg5split":
		return trng.NewMRG(catalog.MRG.Order5Split, name)
	case "yarn3":
		return trng.NewYarn(catalog.YARN.Order3, name)
	case "yarn3split":
		return trng.NewYarn(catalog.YARN.Order3Split, name)
	case "yarn4":
		return trng.NewYarn(catalog.YARN.Order4, name)
	case "yarn5":
		return trng.NewYarn(catalog.YARN.Order5, name)
	case "yarn5split":
		return trng.NewYarn(catalog.YARN.Order5Split, name)
	case "lcg64":
		return trng.NewLCG64(name, false)
	case "lcg64shift":
		return trng.NewLCG64(name, true)
	case "count128":
		return trng.NewCount128(name)
	case "lagfib":
		return trng.NewLagFibXor(name)
	case "xoshiro256plus":
		return trng.NewXoshiro256Plus(), nil
	case "mt19937":
		return trng.NewMT19937(), nil
	case "mt19937_64":
		return trng.NewMT19937_64(), nil
	default:
		return nil, errUnknownFamily(family)
	}
}

type errUnknownFamily string

func (e errUnknownFamily) Error() string { return "unknown engine family: " + string(e) }

// create builds a new engine of the named family/parameter-set pair and
// returns an opaque integer handle for subsequent calls.
// Args: family (string), name (string)
func create(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: requires (family, name)")
	}
	e, err := buildEngine(args[0].String(), args[1].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	mu.Lock()
	nextID++
	id := nextID
	engines[id] = e
	mu.Unlock()

	return js.ValueOf(id)
}

func lookup(args []js.Value) (trng.Engine, bool) {
	if len(args) < 1 {
		return nil, false
	}
	mu.Lock()
	defer mu.Unlock()
	e, ok := engines[args[0].Int()]
	return e, ok
}

// step advances the engine and returns its next raw output. JS numbers
// cannot represent a full uint64 exactly, so the value is returned as a
// decimal string.
func step(this js.Value, args []js.Value) interface{} {
	e, ok := lookup(args)
	if !ok {
		return js.ValueOf("error: unknown handle")
	}
	return js.ValueOf(strconv.FormatUint(e.Step(), 10))
}

// discard advances the engine n steps without returning the outputs.
// Args: handle (number), n (string, decimal uint64)
func discard(this js.Value, args []js.Value) interface{} {
	e, ok := lookup(args)
	if !ok {
		return js.ValueOf("error: unknown handle")
	}
	if len(args) < 2 {
		return js.ValueOf("error: requires (handle, n)")
	}
	n, err := strconv.ParseUint(args[1].String(), 10, 64)
	if err != nil {
		return js.ValueOf("error: invalid n")
	}
	e.Discard(n)
	return js.ValueOf(true)
}

// jump advances the engine by n steps using the sub-stream jump-ahead
// algebra. Only valid for families implementing ParallelEngine.
func jump(this js.Value, args []js.Value) interface{} {
	e, ok := lookup(args)
	if !ok {
		return js.ValueOf("error: unknown handle")
	}
	pe, ok := e.(trng.ParallelEngine)
	if !ok {
		return js.ValueOf("error: engine does not support Jump")
	}
	if len(args) < 2 {
		return js.ValueOf("error: requires (handle, n)")
	}
	n, err := strconv.ParseUint(args[1].String(), 10, 64)
	if err != nil {
		return js.ValueOf("error: invalid n")
	}
	pe.Jump(n)
	return js.ValueOf(true)
}

// split reconfigures the engine to emit the n-th of s equidistant
// interleaved sub-streams.
func split(this js.Value, args []js.Value) interface{} {
	e, ok := lookup(args)
	if !ok {
		return js.ValueOf("error: unknown handle")
	}
	pe, ok := e.(trng.ParallelEngine)
	if !ok {
		return js.ValueOf("error: engine does not support Split")
	}
	if len(args) < 3 {
		return js.ValueOf("error: requires (handle, s, n)")
	}
	if err := pe.Split(uint32(args[1].Int()), uint32(args[2].Int())); err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(true)
}

// marshal renders the engine's canonical text status.
func marshal(this js.Value, args []js.Value) interface{} {
	e, ok := lookup(args)
	if !ok {
		return js.ValueOf("error: unknown handle")
	}
	m, ok := e.(interface{ MarshalText() ([]byte, error) })
	if !ok {
		return js.ValueOf("error: engine does not support marshal")
	}
	text, err := m.MarshalText()
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(string(text))
}

// destroy releases a handle's engine.
func destroy(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: requires (handle)")
	}
	mu.Lock()
	delete(engines, args[0].Int())
	mu.Unlock()
	return js.ValueOf(true)
}

func main() {
	js.Global().Set("trng", map[string]interface{}{
		"create":  js.FuncOf(create),
		"step":    js.FuncOf(step),
		"discard": js.FuncOf(discard),
		"jump":    js.FuncOf(jump),
		"split":   js.FuncOf(split),
		"marshal": js.FuncOf(marshal),
		"destroy": js.FuncOf(destroy),
	})

	select {}
}
