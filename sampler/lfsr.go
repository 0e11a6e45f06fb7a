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

// the value of the register at power on. the register must never be zero
// otherwise the feedback bit will always be zero and the output will stick
const lfsrSeed = 0b1

// the feedback bit is written to this bit before the register is shifted
const lfsrFeedbackBit = 14

// tap positions for the two modes. in both modes the tap is XORed with bit 0
const (
	lfsrLongTap  = 1
	lfsrShortTap = 6
)

// LFSR is the linear-feedback shift register used by the Noise generator.
//
// On each step the feedback bit is calculated by XORing bit 0 with the tap
// bit. The feedback is written to bit 14 and then the register is shifted
// right by one. Note that the feedback is written before the shift and so
// after a step the highest bit that can be set is bit 13.
//
// In the long mode the register repeats every 11811 steps. In the short mode
// the register repeats every 254 steps.
type LFSR struct {
	bits uint16
	tap  uint
}

// NewLFSR is the preferred method of initialisation for the LFSR type. The
// short argument selects the short sequence.
func NewLFSR(short bool) LFSR {
	r := LFSR{
		bits: lfsrSeed,
		tap:  lfsrLongTap,
	}
	if short {
		r.tap = lfsrShortTap
	}
	return r
}

func (r LFSR) String() string {
	return fmt.Sprintf("%015b (tap %d)", r.bits, r.tap)
}

// Short returns true if the register is using the short tap.
func (r LFSR) Short() bool {
	return r.tap == lfsrShortTap
}

// Step the register once.
func (r *LFSR) Step() {
	feedback := (r.bits & 0x01) ^ ((r.bits >> r.tap) & 0x01)
	r.bits &^= 1 << lfsrFeedbackBit
	r.bits |= feedback << lfsrFeedbackBit
	r.bits >>= 1
}

// Bit returns true if bit 0 of the register is set. This is the output of the
// register.
func (r LFSR) Bit() bool {
	return r.bits&0x01 == 0x01
}

// Value returns the current contents of the register.
func (r LFSR) Value() uint16 {
	return r.bits
}

// Reset the register to its seed value.
func (r *LFSR) Reset() {
	r.bits = lfsrSeed
}

// Period returns the number of steps required for the register to return to
// its seed value. The receiver is not changed.
func (r LFSR) Period() int {
	c := r
	c.Reset()

	// the register is at most 15 bits wide so it must return to a previous
	// value before this many steps
	const limit = 1 << 15

	for n := 1; n <= limit; n++ {
		c.Step()
		if c.bits == lfsrSeed {
			return n
		}
	}

	// only possible if the sequence from the seed enters a cycle that does not
	// include the seed. that can't happen with the taps used by NewLFSR()
	return 0
}
