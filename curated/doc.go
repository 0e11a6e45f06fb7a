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

// Package curated provides the error type used throughout ChipVoice.
//
// A curated error is created with Errorf(), which takes a formatting pattern
// and values in the same way as fmt.Errorf(). Unlike fmt.Errorf() the pattern
// is retained so that an error can later be identified by the pattern that
// created it:
//
//	const InvalidFrequency = "sampler: invalid frequency (%v)"
//
//	err := curated.Errorf(InvalidFrequency, 0.0)
//	if curated.Is(err, InvalidFrequency) {
//		...
//	}
//
// Has() performs the same check but also searches any curated errors used as
// values, so that a pattern can be found after it has been wrapped:
//
//	f := curated.Errorf("render: %v", err)
//	curated.Is(f, InvalidFrequency)  // false
//	curated.Has(f, InvalidFrequency) // true
//
// IsAny() reports whether an error is curated at all. Errors that are not
// curated have come from outside the project (the standard library, a third
// party package) and have not been accounted for.
//
// The message returned by Error() is normalised so that adjacent duplicate
// prefixes are collapsed. An error with the message "wavwriter: file exists"
// wrapped with the pattern "wavwriter: %v" is reported as "wavwriter: file
// exists" and not "wavwriter: wavwriter: file exists".
package curated
