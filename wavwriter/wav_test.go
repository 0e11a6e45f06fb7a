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

package wavwriter_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/test"
	"github.com/jetsetilly/chipvoice/wavwriter"
	"github.com/youpy/go-wav"
)

// size of the RIFF, fmt and data chunk headers
const headerSize = 44

func ramp(n int) []uint8 {
	d := make([]uint8, n)
	for i := range d {
		d[i] = uint8(i)
	}
	return d
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ramp.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)

	data := ramp(1000)

	// data can be written in more than one part
	n, err := aw.Write(data[:300])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 300)
	n, err = aw.Write(data[300:])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 700)
	test.ExpectEquality(t, aw.Len(), 1000)

	// the file is not created until Close()
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, aw.Close())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), headerSize+len(data))

	test.ExpectEquality(t, string(b[0:4]), "RIFF")
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[4:8]), uint32(len(b)-8))
	test.ExpectEquality(t, string(b[8:12]), "WAVE")
	test.ExpectEquality(t, string(b[36:40]), "data")
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[40:44]), uint32(len(data)))

	// samples are written verbatim
	for i, v := range b[headerSize:] {
		test.DemandEquality(t, v, data[i], i)
	}

	// cannot write after close
	_, err = aw.Write(data)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.Closed))
	test.ExpectSuccess(t, curated.Is(aw.Close(), wavwriter.Closed))
}

func TestFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "format.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)
	_, err = aw.Write(ramp(256))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	// read the format chunk with a decoder that is independent of the
	// encoder used by the wavwriter package
	r := wav.NewReader(f)
	format, err := r.Format()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, format.AudioFormat, uint16(wav.AudioFormatPCM))
	test.ExpectEquality(t, format.NumChannels, uint16(wavwriter.NumChannels))
	test.ExpectEquality(t, format.SampleRate, uint32(44100))
	test.ExpectEquality(t, format.ByteRate, uint32(44100))
	test.ExpectEquality(t, format.BlockAlign, uint16(1))
	test.ExpectEquality(t, format.BitsPerSample, uint16(wavwriter.BitDepth))
}

func TestErrors(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.InvalidSampleRate))

	fn := filepath.Join(t.TempDir(), "empty.wav")
	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(aw.Close(), wavwriter.NoSamples))

	// the directory does not exist
	fn = filepath.Join(t.TempDir(), "missing", "out.wav")
	aw, err = wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)
	_, err = aw.Write(ramp(10))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(aw.Close(), wavwriter.FileError))

	// a failed Close() can be retried. the samples are still buffered
	test.ExpectSuccess(t, curated.Is(aw.Close(), wavwriter.FileError))
	test.ExpectEquality(t, aw.Len(), 10)
}

func TestCloseRetry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")
	fn := filepath.Join(dir, "out.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)
	_, err = aw.Write(ramp(10))
	test.DemandSuccess(t, err)

	err = aw.Close()
	test.ExpectSuccess(t, curated.Is(err, wavwriter.FileError))
	test.ExpectFailure(t, curated.Is(err, wavwriter.Closed))

	// create the missing directory and try again
	test.DemandSuccess(t, os.Mkdir(dir, 0755))
	test.ExpectSuccess(t, aw.Close())

	fi, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fi.Size(), int64(44+10))

	// only now is the writer closed
	test.ExpectSuccess(t, curated.Is(aw.Close(), wavwriter.Closed))
	_, err = aw.Write(ramp(1))
	test.ExpectSuccess(t, curated.Is(err, wavwriter.Closed))
}
