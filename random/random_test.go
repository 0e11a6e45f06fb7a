// This file is part of ChipVoice.
//
// ChipVoice is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChipVoice is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChipVoice.  If not, see <https://www.gnu.org/licenses/>.

package random_test

import (
	"testing"

	"github.com/jetsetilly/chipvoice/random"
	"github.com/jetsetilly/chipvoice/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Float64(), b.Float64(), i)
	}
}

func TestReset(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true

	first := make([]float64, 16)
	for i := range first {
		first[i] = a.Float64()
	}

	a.Reset()
	for i := range first {
		test.ExpectEquality(t, a.Float64(), first[i], i)
	}
}

func TestDither(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true

	const n = 1000000

	var sum float64
	for range n {
		d := a.Dither()
		if d < -random.DitherScale/2 || d >= random.DitherScale/2 {
			t.Fatalf("dither value out of range: %v", d)
		}
		sum += d
	}

	// the standard deviation of the mean is around 1.1e-6 for this number of
	// samples
	test.ExpectApproximate(t, sum/n, 0.0, 1e-5)
}
