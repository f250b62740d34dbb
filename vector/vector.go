// Package vector implements the tonal vector algebra: a non-lossy
// encoding of pitches and intervals as (diatonic, chromatic[, octave])
// integer tuples, with addition and subtraction defined over it.
//
// Keeping the diatonic and chromatic values separate is what preserves
// enharmonic spelling: C sharp is (0,1) while D flat is (1,1), even
// though both are one half-step above middle C.
package vector

import (
	"errors"
	"fmt"

	"github.com/openmusickit/tonalgo/constants"
)

// ErrShape is returned when an octave-qualified value appears as the
// right operand against an abstract (octave-free) left operand.
var ErrShape = errors.New("an octave designation cannot be added to an abstract tonal value")

// Vector is a tonal value. The two variants share the (D, C) payload:
// an interval vector (Pitched == false) is an abstract distance or an
// unanchored pitch class, and a pitch vector (Pitched == true) is an
// absolute pitch whose Oct field anchors it so that Pitch(0, 0, 0) is
// middle C. Oct is meaningless on interval vectors and always zero.
//
// Vectors are immutable values; two vectors are equal exactly when
// their components and variant match, so == works.
type Vector struct {
	D       int // diatonic value
	C       int // chromatic value
	Oct     int // octave designation, pitch vectors only
	Pitched bool
}

// Interval returns an octave-free tonal vector.
func Interval(d, c int) Vector {
	return Vector{D: d, C: c}
}

// Pitch returns an octave-anchored tonal vector.
func Pitch(d, c, o int) Vector {
	return Vector{D: d, C: c, Oct: o, Pitched: true}
}

func (v Vector) String() string {
	if v.Pitched {
		return fmt.Sprintf("(%d, %d, %d)", v.D, v.C, v.Oct)
	}
	return fmt.Sprintf("(%d, %d)", v.D, v.C)
}

// Negate flips the sign of every component, the octave included.
// A negated vector implies an interval moving downward.
func (v Vector) Negate() Vector {
	return Vector{D: -v.D, C: -v.C, Oct: -v.Oct, Pitched: v.Pitched}
}

// floorMod is a modulo whose result takes the sign of the divisor,
// so negative values wrap upward: floorMod(-1, 7) == 6. Go's % truncates
// toward zero, which would leave negative components unnormalized.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// floorDiv rounds toward negative infinity: floorDiv(-1, 7) == -1.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

// Normalize returns the canonical rendering of v, with the diatonic
// value wrapped into [0, 6] and the chromatic value into [0, 11]. On
// pitch vectors the octave absorbs the diatonic wrap: the diatonic and
// chromatic octaves co-occur in anything produced by Sum or Diff, so
// the diatonic carry alone is authoritative.
//
// Already-canonical vectors are returned unchanged, octave untouched.
// Normalize is total: any integer components are accepted.
func Normalize(v Vector) Vector {
	if v.D >= 0 && v.D < constants.DLen && v.C >= 0 && v.C < constants.CLen {
		return v
	}

	d := floorMod(v.D, constants.DLen)
	dOct := floorDiv(v.D, constants.DLen)
	c := floorMod(v.C, constants.CLen)

	if !v.Pitched {
		return Interval(d, c)
	}
	return Pitch(d, c, v.Oct+dOct)
}

// Sum returns the normalized value of x augmented by y.
//
// A pitch may absorb an interval (the octave rides along, adjusted by
// any diatonic carry) and two intervals or two pitches combine
// component-wise, but an interval cannot absorb a pitch: that would
// pin an abstract value to a register, and fails with ErrShape. The
// octave-qualified operand must be on the left.
func Sum(x, y Vector) (Vector, error) {
	if !x.Pitched && y.Pitched {
		return Vector{}, ErrShape
	}

	s := Vector{
		D:       x.D + y.D,
		C:       x.C + y.C,
		Oct:     x.Oct + y.Oct,
		Pitched: x.Pitched,
	}
	return Normalize(s), nil
}

// Diff returns the normalized value of x diminished by y. The same
// shape rule as Sum applies: Diff(interval, pitch) fails with ErrShape.
func Diff(x, y Vector) (Vector, error) {
	return Sum(x, y.Negate())
}
