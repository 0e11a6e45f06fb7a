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
	"math"

	"github.com/jetsetilly/chipvoice/curated"
)

// Sampler is implemented by all waveform generators.
type Sampler interface {
	// Sample returns the amplitude at time seconds after the beginning of the
	// note. The samplers in this package always return a value in the range
	// -1 to 1 but callers should not assume that other implementations do.
	Sample(time float64) float64
}

// Pure is implemented by samplers that can report whether the value returned
// by Sample() depends only on the time argument. A Pure sampler that returns
// true can be sampled out of order and from more than one goroutine.
type Pure interface {
	Sampler
	Pure() bool
}

// IsPure returns true if the sampler implements Pure and reports that it is.
func IsPure(s Sampler) bool {
	if p, ok := s.(Pure); ok {
		return p.Pure()
	}
	return false
}

// Error patterns returned by the constructors.
const (
	InvalidFrequency = "sampler: invalid frequency (%v)"
	InvalidVolume    = "sampler: invalid volume (%v)"
	UnknownVoice     = "sampler: unknown voice (%s)"
)

// checkFrequency returns an error if the frequency cannot be used to calculate
// a period. zero is allowed only if allowZero is true.
func checkFrequency(frequency float64, allowZero bool) error {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency < 0 {
		return curated.Errorf(InvalidFrequency, frequency)
	}
	if frequency == 0 && !allowZero {
		return curated.Errorf(InvalidFrequency, frequency)
	}
	return nil
}

func checkVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return curated.Errorf(InvalidVolume, volume)
	}
	return nil
}

// wrap returns x modulo m with the sign of m. unlike math.Mod() a negative x
// produces a positive result.
func wrap(x float64, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Silence is a sampler that always returns zero.
type Silence struct{}

// Sample implements the Sampler interface.
func (Silence) Sample(_ float64) float64 {
	return 0
}

// Pure implements the Pure interface.
func (Silence) Pure() bool {
	return true
}

func (Silence) String() string {
	return "silence"
}
