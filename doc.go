// Package easing provides easing (interpolation) sequences in pure Go.
//
// An easing sequence produces the intermediate values between a start and an
// end over a fixed number of discrete steps, following one of the standard
// animation curve shapes. It is meant for animation, UI transitions, audio
// fades and anything else that needs a list of numbers tracing a named curve.
//
// # Quick Start
//
// Pull values one at a time:
//
//	seq := easing.QuadIn(0, 10000, 10)
//	for {
//	    v, ok := seq.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v) // 100, 400, 900, ... 10000
//	}
//
// Or range over the sequence:
//
//	for v := range easing.SinOut(0, 1, 60).All() {
//	    draw(v)
//	}
//
// # Curves
//
// Sixteen curves are built in, each with its own constructor:
//
//   - [Linear]
//   - [QuadIn], [QuadOut], [QuadInOut]
//   - [CubicIn], [CubicOut], [CubicInOut]
//   - [QuarticIn], [QuarticOut], [QuarticInOut]
//   - [SinIn], [SinOut], [SinInOut]
//   - [ExpIn], [ExpOut], [ExpInOut]
//
// Custom shapes can be plugged in with [New] and any [Func] that returns 1
// at progress 1.
//
// When the curve is picked at runtime, use the [Curve] enumeration. It parses
// from and marshals to snake_case names ("quad_inout"), so it can live in
// configuration files and command-line flags:
//
//	var config easing.Config
//	if err := json.Unmarshal(data, &config); err != nil {
//	    log.Fatal(err)
//	}
//	seq, err := easing.NewSequence(&config)
//
// # Step Semantics
//
// A sequence with n steps yields exactly n values, at progress 1/n, 2/n, ...,
// n/n. The start value itself is never produced and the last value is always
// exactly end. After the last value, Next keeps reporting exhaustion; a
// sequence cannot be rewound.
//
// The constructors accept any input: a sequence with zero or negative steps is
// simply exhausted from the start. [Config.Validate], [NewSequence] and
// [Values] reject such step counts with [ErrInvalidConfig] instead.
//
// # Bulk Fill
//
// [Fill] writes a whole sequence into a float32 or float64 slice, scaling the
// coefficients with SIMD operations from github.com/tphakala/simd. [Values]
// is the one-shot convenience form.
//
// # Timelines
//
// A [Timeline] chains segments, each easing from the previous keyframe to the
// next:
//
//	tl, err := easing.NewTimeline(0,
//		easing.Keyframe{Value: 1, Steps: 30, Curve: easing.CurveExpOut},
//		easing.Keyframe{Value: 0, Steps: 30, Curve: easing.CurveQuadIn},
//	)
//
// # Thread Safety
//
// A [Sequence] must not be shared between goroutines without synchronization.
// Independent sequences share no state and may be driven in parallel.
package easing
