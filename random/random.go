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

package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a source of uniform random numbers.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) source() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewSource(0))
		} else {
			rnd.rnd = rand.New(rand.NewSource(baseSeed))
		}
	}
	return rnd.rnd
}

// Reset the sequence of random numbers to the beginning. The ZeroSeed field is
// checked again on the next call to Float64() or Dither().
func (rnd *Random) Reset() {
	rnd.rnd = nil
}

// Float64 returns a number in the range [0.0, 1.0).
func (rnd *Random) Float64() float64 {
	return rnd.source().Float64()
}

// DitherScale is the width of the range of values returned by Dither().
const DitherScale = 1.0 / 256.0

// Dither returns zero-mean noise in the range [-DitherScale/2, DitherScale/2).
func (rnd *Random) Dither() float64 {
	return (rnd.Float64() - 0.5) * DitherScale
}
