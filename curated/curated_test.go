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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/test"
)

const testPattern = "test: value is %d"
const wrapPattern = "wrap: %v"

func TestFormatting(t *testing.T) {
	err := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, err.Error(), "test: value is 10")
}

func TestDuplicatePrefix(t *testing.T) {
	e := curated.Errorf("wavwriter: %v", "empty buffer")
	f := curated.Errorf("wavwriter: %v", e)
	test.ExpectEquality(t, f.Error(), "wavwriter: empty buffer")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// uncurated errors are never matched
	u := errors.New("test: value is 10")
	test.ExpectFailure(t, curated.IsAny(u))
	test.ExpectFailure(t, curated.Is(u, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)

	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectFailure(t, curated.Has(f, "other: %v"))
	test.ExpectEquality(t, f.Error(), "wrap: test: value is 10")
}

func TestUnwrap(t *testing.T) {
	u := errors.New("disk full")
	f := curated.Errorf(wrapPattern, u)
	test.ExpectSuccess(t, errors.Is(f, u))
}
