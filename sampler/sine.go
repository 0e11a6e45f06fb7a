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

package sampler

import (
	"fmt"
	"math"

	"github.com/jetsetilly/chipvoice/random"
)

// Sine is a sine wave generator with optional dithering.
type Sine struct {
	frequency float64
	volume    float64

	// dithering is applied only when this is not nil
	dither *random.Random
}

// NewSine is the preferred method of initialisation for the Sine type. A
// frequency of zero is allowed and produces silence.
func NewSine(frequency float64, volume float64) (*Sine, error) {
	if err := checkFrequency(frequency, true); err != nil {
		return nil, err
	}
	if err := checkVolume(volume); err != nil {
		return nil, err
	}
	return &Sine{
		frequency: frequency,
		volume:    volume,
	}, nil
}

// SetDither adds a small amount of zero-mean noise to every sample, drawn
// from the Random instance. Dithering masks the buzz caused by quantising a
// quiet sine wave to 8 bits. A nil argument turns dithering off.
//
// The Random instance is used on every call to Sample() so a dithered Sine is
// not Pure.
func (s *Sine) SetDither(rnd *random.Random) {
	s.dither = rnd
}

// Sample implements the Sampler interface.
func (s *Sine) Sample(time float64) float64 {
	amplitude := math.Sin(time*2*math.Pi*s.frequency) * s.volume
	if s.dither != nil {
		amplitude += s.dither.Dither()
	}
	return amplitude
}

// Pure implements the Pure interface.
func (s *Sine) Pure() bool {
	return s.dither == nil
}

func (s *Sine) String() string {
	if s.dither != nil {
		return fmt.Sprintf("sine: %.2fHz vol=%.2f (dithered)", s.frequency, s.volume)
	}
	return fmt.Sprintf("sine: %.2fHz vol=%.2f", s.frequency, s.volume)
}
