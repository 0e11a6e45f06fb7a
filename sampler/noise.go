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
)

// Noise is a pseudo-random noise generator driven by an LFSR.
//
// The LFSR is clocked at twice the frequency of the generator, that is, once
// every half-period. The output of the generator is +1 when bit 0 of the
// register is set and -1 otherwise.
type Noise struct {
	frequency  float64
	volume     float64
	halfPeriod float64

	// the register and the phase of the previous sample time within the
	// half-period. the register is stepped when the phase of the current
	// sample is less than the phase of the previous sample
	lfsr  LFSR
	phase float64

	// the volume value is not applied to the output unless this is true. by
	// default noise is always full scale
	ScaleByVolume bool
}

// NewNoise is the preferred method of initialisation for the Noise type. The
// short argument selects the short (tap 6) sequence rather than the long (tap
// 1) sequence.
func NewNoise(frequency float64, volume float64, short bool) (*Noise, error) {
	if err := checkFrequency(frequency, false); err != nil {
		return nil, err
	}
	if err := checkVolume(volume); err != nil {
		return nil, err
	}
	return &Noise{
		frequency:  frequency,
		volume:     volume,
		halfPeriod: 1 / (frequency * 2),
		lfsr:       NewLFSR(short),
	}, nil
}

// Sample implements the Sampler interface. Calls must be made in increasing
// time order.
func (n *Noise) Sample(time float64) float64 {
	prev := n.phase
	n.phase = wrap(time, n.halfPeriod)

	// phase has wrapped around so a clock edge has occurred since the previous
	// sample. the register steps only once no matter how many edges have
	// passed
	if n.phase < prev {
		n.lfsr.Step()
	}

	v := 1.0
	if n.ScaleByVolume {
		v = n.volume
	}

	if n.lfsr.Bit() {
		return v
	}
	return -v
}

// Pure implements the Pure interface. Noise is never pure.
func (n *Noise) Pure() bool {
	return false
}

// Reset the generator to the state it was in when it was created.
func (n *Noise) Reset() {
	n.lfsr.Reset()
	n.phase = 0
}

// Register returns a copy of the generator's LFSR.
func (n *Noise) Register() LFSR {
	return n.lfsr
}

func (n *Noise) String() string {
	mode := "long"
	if n.lfsr.Short() {
		mode = "short"
	}
	return fmt.Sprintf("noise: %.2fHz vol=%.2f (%s) [%s]", n.frequency, n.volume, mode, n.lfsr)
}
