package core

import "math"

// EaseOutElastic is an elastic ease-out curve over t in [0, 1].
// magnitude in (0, 1) controls the spring: larger values oscillate faster and
// settle sooner. The curve returns t unchanged at the endpoints and may leave
// [0, 1] for t outside that range.
func EaseOutElastic(t, magnitude float64) float64 {
	if t == 0 || t == 1 {
		return t
	}

	p := 1 - magnitude
	scaled := t * 2
	s := p / (2 * math.Pi) * math.Asin(1)

	return math.Pow(2, -10*scaled)*math.Sin((scaled-s)*(2*math.Pi)/p) + 1
}
