// Package simdops maps the vector kernels used by bulk curve fills onto
// float32 and float64 implementations.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the set of element types a fill can produce.
type Float interface {
	float32 | float64
}

// Ops holds the kernels for one element type.
type Ops[F Float] struct {
	// Scale sets dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)

	// AddConst adds c to each element of dst in place.
	AddConst func(dst []F, c F)

	// Sum adds up a.
	Sum func(a []F) F
}

var (
	ops32 = Ops[float32]{
		Scale:    f32.Scale,
		AddConst: addConst32,
		Sum:      f32.Sum,
	}
	ops64 = Ops[float64]{
		Scale:    f64.Scale,
		AddConst: addConst64,
		Sum:      f64.Sum,
	}
)

func addConst64(dst []float64, c float64) {
	f64.AddScalar(dst, dst, c)
}

func addConst32(dst []float32, c float32) {
	f32.AddScalar(dst, dst, c)
}

// For returns the shared kernel table for F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Info describes the SIMD instruction sets detected on this CPU.
func Info() string {
	return cpu.Info()
}
