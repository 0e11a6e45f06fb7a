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

// Package inspect loads an audio file and summarises its contents. It is used
// to check the output of a render and to compare it against recordings of
// real hardware.
//
// WAV files are decoded with github.com/go-audio/wav and MP3 files with
// github.com/hajimehoshi/go-mp3. The type of file is decided by the filename
// extension.
package inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/logger"
)

const logTag = "inspect"

// Error patterns.
const (
	UnsupportedFile = "inspect: unsupported file type (%s)"
	InvalidFile     = "inspect: %s: %v"
)

// Summary of an audio file.
type Summary struct {
	Filename   string
	Format     string
	SampleRate int
	NumChans   int
	BitDepth   int

	// number of frames. a frame is one sample for every channel
	Frames int

	// duration in seconds
	Duration float64

	// the smallest and largest sample values in the first channel. the values
	// are as returned by the decoder
	Min int
	Max int
}

func (s Summary) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%s: %s\n", s.Filename, s.Format))
	b.WriteString(fmt.Sprintf("  sample rate: %dHz\n", s.SampleRate))
	b.WriteString(fmt.Sprintf("  channels: %d\n", s.NumChans))
	b.WriteString(fmt.Sprintf("  bit depth: %d\n", s.BitDepth))
	b.WriteString(fmt.Sprintf("  frames: %d\n", s.Frames))
	b.WriteString(fmt.Sprintf("  duration: %.03fs\n", s.Duration))
	b.WriteString(fmt.Sprintf("  range: %d to %d\n", s.Min, s.Max))
	return b.String()
}

// Load and summarise the audio file.
func Load(filename string) (Summary, error) {
	s := Summary{Filename: filename}

	f, err := os.Open(filename)
	if err != nil {
		return s, curated.Errorf(InvalidFile, filename, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		err = loadWAV(&s, f)
	case ".mp3":
		err = loadMP3(&s, f)
	default:
		return s, curated.Errorf(UnsupportedFile, filepath.Ext(filename))
	}
	if err != nil {
		return s, curated.Errorf(InvalidFile, filename, err)
	}

	logger.Logf(logger.Allow, logTag, "%s: %d frames at %dHz", filename, s.Frames, s.SampleRate)

	return s, nil
}

func loadWAV(s *Summary, r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	s.Format = "wav"
	s.SampleRate = int(dec.SampleRate)
	s.NumChans = int(dec.NumChans)
	s.BitDepth = int(dec.BitDepth)

	if s.NumChans > 0 {
		s.Frames = len(buf.Data) / s.NumChans
		s.Min, s.Max = span(buf.Data, s.NumChans)
	}

	dur, err := dec.Duration()
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	s.Duration = dur.Seconds()

	return nil
}

func loadMP3(s *Summary, r io.Reader) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("mp3: %w", err)
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes.".
	const frameSize = 4

	data := make([]int, 0, max(dec.Length()/frameSize, 0))
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return fmt.Errorf("mp3: %w", err)
		}

		// left channel only
		for i := 0; i+1 < n; i += frameSize {
			data = append(data, int(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}

		if err != nil {
			break
		}
	}

	s.Format = "mp3"
	s.SampleRate = dec.SampleRate()
	s.NumChans = 2
	s.BitDepth = 16
	s.Frames = len(data)
	s.Min, s.Max = span(data, 1)
	if s.SampleRate > 0 {
		s.Duration = float64(s.Frames) / float64(s.SampleRate)
	}

	return nil
}

// span returns the smallest and largest values in the first channel of
// interleaved data.
func span(data []int, numChans int) (int, int) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for i := numChans; i < len(data); i += numChans {
		lo = min(lo, data[i])
		hi = max(hi, data[i])
	}
	return lo, hi
}
