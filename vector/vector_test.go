package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tonalTuples returns every spelling of the seven scale degrees with
// naturals, single and double accidentals: 35 interval vectors.
func tonalTuples() []Vector {
	base := [7][2]int{{0, 0}, {1, 2}, {2, 4}, {3, 5}, {4, 7}, {5, 9}, {6, 11}}
	var res []Vector
	for _, m := range []int{0, 1, 2, -1, -2} {
		for _, b := range base {
			res = append(res, Interval(b[0], (b[1]+m+12)%12))
		}
	}
	return res
}

// tonalOctTuples spreads the tonalTuples fixture across middle C and
// two octaves either side.
func tonalOctTuples() []Vector {
	var res []Vector
	for _, o := range []int{0, 1, 2, -1, -2} {
		for _, v := range tonalTuples() {
			res = append(res, Pitch(v.D, v.C, o))
		}
	}
	return res
}

func TestNormalizeLeavesCanonicalUnchanged(t *testing.T) {
	assert := assert.New(t)
	for _, v := range tonalTuples() {
		assert.Equal(v, Normalize(v))
	}
	for _, v := range tonalOctTuples() {
		assert.Equal(v, Normalize(v))
	}
}

func TestNormalizeWrapsOutOfRangeComponents(t *testing.T) {
	cases := []struct {
		in   Vector
		want Vector
	}{
		{Interval(7, 12), Interval(0, 0)},
		{Pitch(7, 12, 0), Pitch(0, 0, 1)},
		{Interval(-1, -1), Interval(6, 11)},
		{Pitch(-1, -1, 0), Pitch(6, 11, -1)},
		{Interval(-1, 0), Interval(6, 0)},
		{Pitch(7, 12, 1), Pitch(0, 0, 2)},
		{Interval(15, 26), Interval(1, 2)},
		{Pitch(-8, -13, 0), Pitch(6, 11, -2)},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(fmt.Sprintf("normalize %v", c.in), func(t *testing.T) {
			assert.Equal(c.want, Normalize(c.in))
		})
	}
}

func TestNormalizeIsTotalAndIdempotent(t *testing.T) {
	assert := assert.New(t)
	for d := -30; d <= 30; d += 3 {
		for c := -30; c <= 30; c += 5 {
			got := Normalize(Interval(d, c))
			assert.GreaterOrEqual(got.D, 0)
			assert.Less(got.D, 7)
			assert.GreaterOrEqual(got.C, 0)
			assert.Less(got.C, 12)
			assert.Equal(got, Normalize(got))

			gotPitch := Normalize(Pitch(d, c, 1))
			assert.Equal(got.D, gotPitch.D)
			assert.Equal(got.C, gotPitch.C)
			assert.Equal(gotPitch, Normalize(gotPitch))
		}
	}
}

func TestSumExamples(t *testing.T) {
	cases := []struct {
		x    Vector
		y    Vector
		want Vector
	}{
		{Interval(0, 0), Interval(2, 3), Interval(2, 3)},
		{Interval(1, 2), Interval(2, 3), Interval(3, 5)},
		{Interval(3, 6), Interval(4, 6), Interval(0, 0)},
		{Pitch(0, 0, 0), Interval(2, 3), Pitch(2, 3, 0)},
		{Pitch(3, 6, 0), Interval(4, 6), Pitch(0, 0, 1)},
		{Pitch(6, 11, 1), Interval(2, 4), Pitch(1, 3, 2)},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v + %v", c.x, c.y), func(t *testing.T) {
			got, err := Sum(c.x, c.y)
			assert.NoError(err)
			assert.Equal(c.want, got)
		})
	}
}

func TestSumShapePrecondition(t *testing.T) {
	assert := assert.New(t)

	_, err := Sum(Interval(0, 0), Pitch(0, 0, 0))
	assert.ErrorIs(err, ErrShape)

	_, err = Sum(Pitch(0, 0, 0), Interval(0, 0))
	assert.NoError(err)

	_, err = Diff(Interval(1, 2), Pitch(1, 2, 0))
	assert.ErrorIs(err, ErrShape)
}

func TestSumIdentity(t *testing.T) {
	assert := assert.New(t)
	for _, v := range tonalTuples() {
		got, err := Sum(v, Interval(0, 0))
		assert.NoError(err)
		assert.Equal(v, got)
	}
	for _, v := range tonalOctTuples() {
		got, err := Sum(v, Interval(0, 0))
		assert.NoError(err)
		assert.Equal(v, got)

		got, err = Sum(v, Pitch(0, 0, 0))
		assert.NoError(err)
		assert.Equal(v, got)
	}
}

func TestDiffExamples(t *testing.T) {
	cases := []struct {
		x    Vector
		y    Vector
		want Vector
	}{
		{Interval(2, 3), Interval(2, 3), Interval(0, 0)},
		{Interval(0, 0), Interval(1, 1), Interval(6, 11)},
		{Pitch(0, 0, 0), Interval(1, 1), Pitch(6, 11, -1)},
		{Interval(0, 1), Interval(1, 1), Interval(6, 0)},
		{Pitch(0, 1, 0), Pitch(6, 10, -1), Pitch(1, 3, 0)},
		{Pitch(0, 0, 0), Pitch(0, 10, 0), Pitch(0, 2, 0)},
		{Interval(3, 5), Interval(1, 1), Interval(2, 4)},
		{Interval(5, 8), Interval(1, 2), Interval(4, 6)},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v - %v", c.x, c.y), func(t *testing.T) {
			got, err := Diff(c.x, c.y)
			assert.NoError(err)
			assert.Equal(c.want, got)
		})
	}
}

func TestSumDiffAreInverse(t *testing.T) {
	assert := assert.New(t)
	for _, x := range tonalTuples() {
		for _, y := range tonalTuples() {
			s, err := Sum(x, y)
			assert.NoError(err)
			back, err := Diff(s, y)
			assert.NoError(err)
			if back != x {
				t.Errorf("diff(sum(%v, %v), %v) = %v", x, y, y, back)
			}

			d, err := Diff(y, x)
			assert.NoError(err)
			back, err = Sum(d, x)
			assert.NoError(err)
			if back != y {
				t.Error()
			}
		}
	}
}

func TestSumDiffAreInverseWithOctaves(t *testing.T) {
	assert := assert.New(t)
	for _, x := range tonalOctTuples() {
		for _, y := range tonalOctTuples() {
			s, err := Sum(x, y)
			assert.NoError(err)
			back, err := Diff(s, y)
			assert.NoError(err)
			if back != x {
				t.Errorf("diff(sum(%v, %v), %v) = %v", x, y, y, back)
			}
		}
	}
}

func TestOctaveCarryFollowsDiatonicSum(t *testing.T) {
	assert := assert.New(t)
	for _, x := range tonalOctTuples() {
		for _, y := range tonalTuples() {
			got, err := Sum(x, y)
			assert.NoError(err)
			// canonical components are non-negative, so plain integer
			// division is the floor here
			want := x.Oct + (x.D+y.D)/7
			if got.Oct != want {
				t.Errorf("%v + %v carried octave %v, want %v", x, y, got.Oct, want)
			}
		}
	}
}

func TestNegateSumsToZero(t *testing.T) {
	assert := assert.New(t)
	for _, v := range tonalTuples() {
		got, err := Sum(v, v.Negate())
		assert.NoError(err)
		assert.Equal(Interval(0, 0), got)
	}
	for _, v := range tonalOctTuples() {
		got, err := Sum(v, v.Negate())
		assert.NoError(err)
		assert.Equal(Pitch(0, 0, 0), got)
	}
}

func TestPitchPlusPitchSumsOctaves(t *testing.T) {
	assert := assert.New(t)
	got, err := Sum(Pitch(0, 0, 1), Pitch(2, 3, 1))
	assert.NoError(err)
	assert.Equal(Pitch(2, 3, 2), got)
}

func TestVariantsAreDistinct(t *testing.T) {
	assert := assert.New(t)
	assert.NotEqual(Interval(0, 0), Pitch(0, 0, 0))
	assert.Equal("(2, 3)", Interval(2, 3).String())
	assert.Equal("(2, 3, -1)", Pitch(2, 3, -1).String())
}
