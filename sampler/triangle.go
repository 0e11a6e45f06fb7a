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
)

// Triangle is a triangle wave. It is the cheap approximation of a sine wave
// used by sound chips that have no multiplier. Like Sine, the wave starts at
// zero and rises to its peak at a quarter of the period.
type Triangle struct {
	frequency float64
	volume    float64
}

// NewTriangle is the preferred method of initialisation for the Triangle type.
func NewTriangle(frequency float64, volume float64) (*Triangle, error) {
	if err := checkFrequency(frequency, false); err != nil {
		return nil, err
	}
	if err := checkVolume(volume); err != nil {
		return nil, err
	}
	return &Triangle{
		frequency: frequency,
		volume:    volume,
	}, nil
}

// Sample implements the Sampler interface.
func (s *Triangle) Sample(time float64) float64 {
	// the 0.75 offset moves the trough of the wave to the three-quarter point
	phase := wrap(time*s.frequency+0.75, 1)
	return (4*math.Abs(phase-0.5) - 1) * s.volume
}

// Pure implements the Pure interface.
func (s *Triangle) Pure() bool {
	return true
}

func (s *Triangle) String() string {
	return fmt.Sprintf("triangle: %.2fHz vol=%.2f", s.frequency, s.volume)
}
