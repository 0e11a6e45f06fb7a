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

// Package sampler implements the waveform generators of a simple sound chip.
// Each generator implements the Sampler interface, mapping the time since the
// beginning of a note to an amplitude between -1 and 1.
//
// Sine, Square and Triangle are pure functions of time. They can be sampled
// in any order and sampling the same time twice will produce the same result.
// (Sine is not pure if dithering has been enabled.)
//
// Noise is driven by a linear-feedback shift register, stepped once on every
// half-period of its frequency. The generator notices a clock edge by
// comparing the phase of the current sample time with the phase of the
// previous sample time. Noise must therefore be sampled in increasing time
// order and it must not be shared between goroutines.
//
// The Pure interface can be used to discover whether a Sampler can be used
// concurrently.
//
// Constructors check the frequency and volume and return a curated error if
// either is unusable. Volume is a scaling factor, conventionally between 0
// and 1, but is not clamped.
package sampler
