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

package render

import "math"

// Midpoint is the quantised value of an amplitude of zero.
const Midpoint = 127

// Quantise converts an amplitude to an unsigned 8-bit sample. The second
// return value is true if the result had to be clamped. A NaN amplitude is
// quantised to the Midpoint and counts as clamped.
func Quantise(amplitude float64, masterVolume float64) (uint8, bool) {
	if math.IsNaN(amplitude) {
		return Midpoint, true
	}

	// the explicit conversion stops the compiler fusing the multiply and add,
	// which can change the floor for some amplitudes
	v := math.Floor(float64(amplitude*127*masterVolume) + Midpoint)

	if v < 0 {
		return 0, true
	}
	if v > math.MaxUint8 {
		return math.MaxUint8, true
	}
	return uint8(v), false
}
