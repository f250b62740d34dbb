package vector

import (
	"github.com/openmusickit/tonalgo/constants"
	"github.com/openmusickit/tonalgo/util"
)

// add is Sum without the shape check, for internal callers that have
// already qualified both operands to the same variant.
func add(x, y Vector) Vector {
	return Normalize(Vector{
		D:       x.D + y.D,
		C:       x.C + y.C,
		Oct:     x.Oct + y.Oct,
		Pitched: x.Pitched,
	})
}

func sub(x, y Vector) Vector {
	return add(x, y.Negate())
}

// qualifyOctaves promotes the octave-free side of a mixed pair to a
// pitch in the octave of middle C, so both sides share a variant.
func qualifyOctaves(x, y Vector) (Vector, Vector) {
	if x.Pitched == y.Pitched {
		return x, y
	}
	if x.Pitched {
		return x, Pitch(y.D, y.C, 0)
	}
	return Pitch(x.D, x.C, 0), y
}

// unmodulo pulls the chromatic value close to its diatonic base, even
// if that takes it negative or past 11. C flat becomes (0, -1) rather
// than (0, 11), which keeps comparisons sane where the two components
// wrap at different points. Expects a canonical diatonic value.
func unmodulo(v Vector) Vector {
	base := constants.MajorScale[v.D].C
	if v.C-base > 6 {
		v.C -= constants.CLen
	}
	if v.C-base < -6 {
		v.C += constants.CLen
	}
	return v
}

// Semitones returns the directed distance in half-steps from the
// origin: middle C for pitch vectors, a unison for interval vectors.
// The spelling is resolved against the major-scale base values, so
// C flat in octave 0 sits at -1, below middle C.
func Semitones(v Vector) int {
	v = Normalize(v)

	if !v.Pitched {
		return unmodulo(v).C
	}

	base := constants.MajorScale[v.D].C
	c := v.C
	if c-base > 3 {
		c -= constants.CLen
	}
	if c-base < -3 {
		c += constants.CLen
	}
	return c + v.Oct*constants.CLen
}

// AbsSemitones returns the absolute distance in half-steps from the origin.
func AbsSemitones(v Vector) int {
	return util.Abs(Semitones(v))
}

// Invert returns the inversion of v about the origin: the value as far
// below the origin as v is above it. A major third inverts to a minor
// sixth; a tritone inverts to the tritone spelled the other way.
func Invert(v Vector) Vector {
	return InvertOn(v, Interval(0, 0))
}

// InvertOn returns the inversion of x about y.
func InvertOn(x, y Vector) Vector {
	x, y = qualifyOctaves(x, y)
	return sub(y, sub(x, y))
}

// HigherOf returns the higher pitch. Enharmonic equals resolve to the
// higher diatonic spelling, so a diminished fifth beats an augmented
// fourth.
func HigherOf(x, y Vector) Vector {
	if Semitones(x) == Semitones(y) {
		if x.D > y.D {
			return x
		}
		return y
	}
	if Semitones(x) > Semitones(y) {
		return x
	}
	return y
}

// LowerOf returns the lower pitch, canonicalized. Enharmonic equals
// resolve to the lower diatonic spelling.
func LowerOf(x, y Vector) Vector {
	x, y = Normalize(x), Normalize(y)
	if Semitones(x) == Semitones(y) {
		if x.D < y.D {
			return x
		}
		return y
	}
	if Semitones(x) < Semitones(y) {
		return x
	}
	return y
}

// LargerOf returns the larger interval, ignoring direction.
func LargerOf(x, y Vector) Vector {
	if AbsSemitones(x) == AbsSemitones(y) {
		if util.Abs(x.D) > util.Abs(y.D) {
			return x
		}
		return y
	}
	if AbsSemitones(x) > AbsSemitones(y) {
		return x
	}
	return y
}

// SmallerOf returns the smaller interval, ignoring direction.
func SmallerOf(x, y Vector) Vector {
	if x == LargerOf(x, y) {
		return y
	}
	return x
}

// AbsInterval returns the smaller of an interval and its inversion,
// preferring the upward spelling when the two tie.
func AbsInterval(x Vector) Vector {
	y := Invert(x)

	if !x.Pitched {
		if x.D == y.D {
			if unmodulo(Normalize(x)).C < 0 {
				return y
			}
			if unmodulo(Normalize(y)).C < 0 {
				return x
			}
		}
		return LowerOf(x, y)
	}

	if x.Oct < 0 {
		return y
	}
	if y.Oct < 0 {
		return x
	}
	if x.D == y.D && x.Oct == 0 && y.Oct == 0 {
		if unmodulo(Normalize(x)).C < 0 {
			return y
		}
		if unmodulo(Normalize(y)).C < 0 {
			return x
		}
	}
	return LowerOf(x, y)
}

// AbsDiff returns the smallest difference between two tonal values:
// the AbsInterval between them. The result is never larger than a
// tritone.
func AbsDiff(x, y Vector) Vector {
	x, y = qualifyOctaves(x, y)
	a := AbsInterval(sub(x, y))
	b := AbsInterval(sub(y, x))
	return LowerOf(a, b)
}

// AbsIntDiff returns the smallest number of half-steps between two
// tonal values.
func AbsIntDiff(x, y Vector) int {
	x, y = qualifyOctaves(x, y)
	if x.Pitched {
		return util.Abs(Semitones(x) - Semitones(y))
	}
	return Semitones(AbsDiff(x, y))
}

// NearestInstance returns the instance of y's pitch class closest to
// x: the octave designation of y is adjusted until y is within a
// tritone of x. When x carries no octave, y is returned stripped of
// its octave designation.
func NearestInstance(x, y Vector) Vector {
	if !x.Pitched {
		return Interval(y.D, y.C)
	}

	candidates := []Vector{
		Pitch(y.D, y.C, x.Oct),
		Pitch(y.D, y.C, x.Oct-1),
		Pitch(y.D, y.C, x.Oct+1),
	}

	best := candidates[0]
	bestDiff := AbsIntDiff(x, best)
	for _, cand := range candidates[1:] {
		if d := AbsIntDiff(x, cand); d <= bestDiff {
			best, bestDiff = cand, d
		}
	}
	return best
}
