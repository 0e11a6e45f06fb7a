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

import "fmt"

// Square is a pulse wave with a 50% duty cycle.
type Square struct {
	frequency float64
	volume    float64
	period    float64
}

// NewSquare is the preferred method of initialisation for the Square type.
func NewSquare(frequency float64, volume float64) (*Square, error) {
	if err := checkFrequency(frequency, false); err != nil {
		return nil, err
	}
	if err := checkVolume(volume); err != nil {
		return nil, err
	}
	return &Square{
		frequency: frequency,
		volume:    volume,
		period:    1 / frequency,
	}, nil
}

// Sample implements the Sampler interface.
//
// A time falling exactly on the half-period is in the high part of the cycle.
// Only times strictly after the half-period are low.
func (s *Square) Sample(time float64) float64 {
	if wrap(time, s.period) > s.period/2 {
		return -s.volume
	}
	return s.volume
}

// Pure implements the Pure interface.
func (s *Square) Pure() bool {
	return true
}

func (s *Square) String() string {
	return fmt.Sprintf("square: %.2fHz vol=%.2f", s.frequency, s.volume)
}
