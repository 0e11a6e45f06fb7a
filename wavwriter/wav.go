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

// Package wavwriter allows writing of rendered audio to disk as a WAV file.
// The file is always mono with unsigned 8-bit samples.
//
// Note that audio data is buffered in memory in its entirety and written to
// disk when Close() is called.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/logger"
)

const logTag = "wavwriter"

// Format of the WAV file written by WavWriter.
const (
	BitDepth    = 8
	NumChannels = 1

	// uncompressed PCM in the WAVE format chunk
	pcmFormat = 1
)

// Error patterns.
const (
	InvalidSampleRate = "wavwriter: invalid sample rate (%d)"
	NoSamples         = "wavwriter: no samples to write to %s"
	Closed            = "wavwriter: %s has already been written"
	FileError         = "wavwriter: %v"
)

// WavWriter buffers samples and writes them to a WAV file when Close() is
// called. It implements the io.WriteCloser interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
	closed     bool
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is not created until Close() is called.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(InvalidSampleRate, sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}

	return aw, nil
}

// Write adds unsigned 8-bit samples to the buffer. It implements the io.Writer
// interface.
func (aw *WavWriter) Write(p []uint8) (int, error) {
	if aw.closed {
		return 0, curated.Errorf(Closed, aw.filename)
	}
	for _, v := range p {
		aw.buffer = append(aw.buffer, int(v))
	}
	return len(p), nil
}

// Len returns the number of samples in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close creates the WAV file and writes the buffered samples to it. A
// WavWriter cannot be written to after it has been closed.
func (aw *WavWriter) Close() (rerr error) {
	if aw.closed {
		return curated.Errorf(Closed, aw.filename)
	}

	// the encoder cannot write a valid header without any sample data
	if len(aw.buffer) == 0 {
		return curated.Errorf(NoSamples, aw.filename)
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(FileError, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, BitDepth, NumChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, logTag, "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(FileError, err)
	}

	// Close() on the encoder writes the final chunk sizes into the header. it
	// does not close the underlying file
	if err := enc.Close(); err != nil {
		return curated.Errorf(FileError, err)
	}

	aw.closed = true
	aw.buffer = nil

	return nil
}
