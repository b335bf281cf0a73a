package tween

import (
	"math"
	"sort"
)

// Func maps normalized progress in [0, 1] to an eased value. Results may
// leave [0, 1] for overshooting curves such as ease-out-back; the style
// interpolation downstream extrapolates rather than clamps.
type Func func(t float64) float64

// Linear is the identity easing and the default when a configuration names
// no ease.
func Linear(t float64) float64 { return t }

const backOvershoot = 1.70158

var eases = map[string]Func{
	"linear":   Linear,
	"ease-in":  func(t float64) float64 { return t * t },
	"ease-out": func(t float64) float64 { return t * (2 - t) },
	"ease-in-out": func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	},
	"ease-in-cubic":  func(t float64) float64 { return t * t * t },
	"ease-out-cubic": func(t float64) float64 { u := t - 1; return u*u*u + 1 },
	"ease-in-out-cubic": func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 0.5*u*u*u + 1
	},
	"ease-in-sine":  func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	"ease-out-sine": func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
	"ease-in-out-sine": func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	},
	"ease-in-back": func(t float64) float64 {
		return t * t * ((backOvershoot+1)*t - backOvershoot)
	},
	"ease-out-back": func(t float64) float64 {
		u := t - 1
		return u*u*((backOvershoot+1)*u+backOvershoot) + 1
	},
}

// EaseByName resolves an easing id to its function. The empty id resolves to
// Linear. Unknown ids return ok == false.
func EaseByName(name string) (Func, bool) {
	if name == "" {
		return Linear, true
	}
	fn, ok := eases[name]
	return fn, ok
}

// EaseNames lists every recognized easing id in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for name := range eases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
