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

// Package random should be used in preference to the math/rand package when a
// random number is required by a sampler.
//
// By default every Random instance is seeded from a base seed taken from the
// clock when the program starts. Two instances created in the same run will
// produce the same sequence of numbers but the sequence will differ between
// runs.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first number is requested. This is useful for testing
// purposes and for producing identical output files.
//
// A Random instance is not safe for concurrent use.
package random
