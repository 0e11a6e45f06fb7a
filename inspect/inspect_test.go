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

package inspect_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/inspect"
	"github.com/jetsetilly/chipvoice/render"
	"github.com/jetsetilly/chipvoice/sampler"
	"github.com/jetsetilly/chipvoice/test"
	"github.com/jetsetilly/chipvoice/wavwriter"
)

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "square.wav")

	cfg := render.Config{SampleRate: 44100, Length: 0.5, MasterVolume: 0.25}
	r, err := render.NewRenderer(cfg)
	test.DemandSuccess(t, err)

	s, err := sampler.NewSquare(1000, 1)
	test.DemandSuccess(t, err)

	aw, err := wavwriter.New(fn, cfg.SampleRate)
	test.DemandSuccess(t, err)
	_, err = aw.Write(r.Render(s))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, aw.Close())

	sum, err := inspect.Load(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, sum.Format, "wav")
	test.ExpectEquality(t, sum.SampleRate, 44100)
	test.ExpectEquality(t, sum.NumChans, 1)
	test.ExpectEquality(t, sum.BitDepth, 8)
	test.ExpectEquality(t, sum.Frames, 22050)
	test.ExpectApproximate(t, sum.Duration, 0.5, 0.001)
	test.ExpectSuccess(t, sum.Min < sum.Max)

	test.ExpectSuccess(t, strings.Contains(sum.String(), "sample rate: 44100Hz"))
}

// silence.mp3 is ten MPEG-1 Layer III frames of mono silence at 44.1kHz. the
// decoder always produces 16bit stereo and each frame is 1152 samples long
func TestMP3(t *testing.T) {
	const frameLen = 1152
	const numFrames = 10

	sum, err := inspect.Load(filepath.Join("testdata", "silence.mp3"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, sum.Format, "mp3")
	test.ExpectEquality(t, sum.SampleRate, 44100)
	test.ExpectEquality(t, sum.NumChans, 2)
	test.ExpectEquality(t, sum.BitDepth, 16)

	test.ExpectSuccess(t, sum.Frames > 0, sum.Frames)
	test.ExpectSuccess(t, sum.Frames <= frameLen*numFrames, sum.Frames)
	test.ExpectEquality(t, sum.Frames%frameLen, 0)
	test.ExpectApproximate(t, sum.Duration, float64(sum.Frames)/44100, 1e-9)

	test.ExpectEquality(t, sum.Min, 0)
	test.ExpectEquality(t, sum.Max, 0)

	test.ExpectSuccess(t, strings.Contains(sum.String(), "silence.mp3: mp3"))
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := inspect.Load(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, inspect.InvalidFile))

	fn := filepath.Join(dir, "audio.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("OggS"), 0644))
	_, err = inspect.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, inspect.UnsupportedFile))

	fn = filepath.Join(dir, "garbage.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("this is not a wav file"), 0644))
	_, err = inspect.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, inspect.InvalidFile))

	fn = filepath.Join(dir, "garbage.mp3")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0644))
	_, err = inspect.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, inspect.InvalidFile))
}
