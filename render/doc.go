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

// Package render drives a sampler.Sampler across a fixed length of time at a
// fixed sample rate. The amplitude of each sample is quantised to an unsigned
// 8-bit value, ready to be handed to the wavwriter package.
//
// The quantisation rule is
//
//	floor(amplitude * 127 * masterVolume + 127)
//
// clamped to the range 0 to 255. An amplitude of zero is quantised to 127.
// Note that the floor is taken after the midpoint is added and so negative
// amplitudes are truncated towards negative infinity in the same way as
// positive amplitudes.
//
// Samplers are expected to return amplitudes between -1 and 1. Amplitudes
// outside of that range are not an error but they are counted and logged when
// the render completes.
//
// Samplers that are not pure (see sampler.Pure) are always rendered
// sequentially in increasing time order. Pure samplers can be rendered on
// more than one goroutine with RenderParallel(). The result is identical to
// that of Render().
package render
