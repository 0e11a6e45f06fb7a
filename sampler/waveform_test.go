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

package sampler_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/chipvoice/random"
	"github.com/jetsetilly/chipvoice/sampler"
	"github.com/jetsetilly/chipvoice/test"
)

func TestSine(t *testing.T) {
	for _, f := range []float64{sampler.DefaultFrequency, 440, 1000, 3520.5} {
		for _, vol := range []float64{0, 0.25, 1} {
			s, err := sampler.NewSine(f, vol)
			test.DemandSuccess(t, err)

			test.ExpectEquality(t, s.Sample(0), 0.0, f, vol)

			period := 1 / f
			for _, tm := range []float64{0.0001, 0.01, 0.1234, 0.5, 0.9} {
				a := s.Sample(tm)
				test.ExpectApproximate(t, a, s.Sample(tm+period), 1e-9, f, vol, tm)
				test.ExpectSuccess(t, math.Abs(a) <= vol, f, vol, tm)
			}

			// peak at a quarter period
			test.ExpectApproximate(t, s.Sample(period/4), vol, 1e-9, f, vol)
		}
	}
}

func TestSineRepeatable(t *testing.T) {
	s, err := sampler.NewSine(440, 1)
	test.DemandSuccess(t, err)

	// out of order sampling produces the same results
	times := []float64{0.3, 0.1, 0.2, 0.1, 0.3}
	first := map[float64]float64{}
	for _, tm := range times {
		v := s.Sample(tm)
		if f, ok := first[tm]; ok {
			test.ExpectEquality(t, v, f, tm)
		} else {
			first[tm] = v
		}
	}
}

func TestSineDither(t *testing.T) {
	s, err := sampler.NewSine(440, 0.5)
	test.DemandSuccess(t, err)

	d, err := sampler.NewSine(440, 0.5)
	test.DemandSuccess(t, err)
	rnd := random.NewRandom()
	rnd.ZeroSeed = true
	d.SetDither(rnd)

	const n = 100000

	var sum float64
	for i := range n {
		tm := float64(i) / 44100
		diff := d.Sample(tm) - s.Sample(tm)
		test.ExpectSuccess(t, math.Abs(diff) <= random.DitherScale/2+1e-12, i)
		sum += diff
	}

	// dithering must not change the mean amplitude
	test.ExpectApproximate(t, sum/n, 0.0, 1e-4)

	// turning dithering off restores the pure sine
	d.SetDither(nil)
	test.ExpectSuccess(t, d.Pure())
	test.ExpectEquality(t, d.Sample(0.1), s.Sample(0.1))
}

func TestSquare(t *testing.T) {
	const vol = 0.8

	// a frequency of 4Hz gives a period and half-period that are exact in
	// binary floating point
	s, err := sampler.NewSquare(4, vol)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.Sample(0), vol)
	test.ExpectEquality(t, s.Sample(0.1), vol)

	// the half-period is in the high part of the cycle
	test.ExpectEquality(t, s.Sample(0.125), vol)
	test.ExpectEquality(t, s.Sample(math.Nextafter(0.125, 1)), -vol)
	test.ExpectEquality(t, s.Sample(0.2), -vol)
	test.ExpectEquality(t, s.Sample(math.Nextafter(0.25, 0)), -vol)
	test.ExpectEquality(t, s.Sample(0.25), vol)

	// same boundary in a later cycle
	test.ExpectEquality(t, s.Sample(0.375), vol)
	test.ExpectEquality(t, s.Sample(math.Nextafter(0.375, 1)), -vol)

	// negative time is treated as though the wave extends back in time
	test.ExpectEquality(t, s.Sample(-0.1), -vol)
	test.ExpectEquality(t, s.Sample(-0.2), vol)
}

func TestSquareOnlyTwoValues(t *testing.T) {
	s, err := sampler.NewSquare(1000, 0.6)
	test.DemandSuccess(t, err)

	var high, low int
	for i := range 44100 {
		switch s.Sample(float64(i) / 44100) {
		case 0.6:
			high++
		case -0.6:
			low++
		default:
			t.Fatalf("unexpected value at sample %d", i)
		}
	}
	test.ExpectSuccess(t, high > 0 && low > 0)
}

func TestTriangle(t *testing.T) {
	const vol = 0.5

	s, err := sampler.NewTriangle(4, vol)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.Sample(0), 0.0)
	test.ExpectEquality(t, s.Sample(0.0625), vol)
	test.ExpectEquality(t, s.Sample(0.125), 0.0)
	test.ExpectEquality(t, s.Sample(0.1875), -vol)
	test.ExpectEquality(t, s.Sample(0.25), 0.0)
	test.ExpectApproximate(t, s.Sample(0.03125), vol/2, 1e-12)

	for i := range 1000 {
		v := s.Sample(float64(i) / 1000)
		test.ExpectSuccess(t, math.Abs(v) <= vol, i)
	}
}
