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

package render

import (
	"math"

	"github.com/jetsetilly/chipvoice/curated"
)

// Default values for the Config type.
const (
	DefaultSampleRate   = 44100
	DefaultLength       = 1.0
	DefaultMasterVolume = 0.25
)

// the largest number of samples a Config can describe
const maxSamples = math.MaxInt32

// Error patterns returned by Config.Validate().
const (
	InvalidSampleRate   = "render: invalid sample rate (%d)"
	InvalidLength       = "render: invalid length (%v)"
	InvalidMasterVolume = "render: invalid master volume (%v)"
	NoSamples           = "render: no samples in %vs at %dHz"
	TooManySamples      = "render: too many samples in %vs at %dHz"
)

// Config describes the output of a render.
type Config struct {
	// samples per second
	SampleRate int

	// length of the render in seconds
	Length float64

	// scaling applied to every amplitude before quantisation
	MasterVolume float64
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		SampleRate:   DefaultSampleRate,
		Length:       DefaultLength,
		MasterVolume: DefaultMasterVolume,
	}
}

// Validate returns an error if the Config cannot be rendered.
func (cfg Config) Validate() error {
	if cfg.SampleRate <= 0 {
		return curated.Errorf(InvalidSampleRate, cfg.SampleRate)
	}
	if math.IsNaN(cfg.Length) || math.IsInf(cfg.Length, 0) || cfg.Length <= 0 {
		return curated.Errorf(InvalidLength, cfg.Length)
	}
	if math.IsNaN(cfg.MasterVolume) || math.IsInf(cfg.MasterVolume, 0) {
		return curated.Errorf(InvalidMasterVolume, cfg.MasterVolume)
	}
	if float64(cfg.SampleRate)*cfg.Length > maxSamples {
		return curated.Errorf(TooManySamples, cfg.Length, cfg.SampleRate)
	}
	if cfg.NumSamples() == 0 {
		return curated.Errorf(NoSamples, cfg.Length, cfg.SampleRate)
	}
	return nil
}

// NumSamples returns the number of samples in the render. Any fraction of a
// sample at the end of the render is dropped.
func (cfg Config) NumSamples() int {
	return int(math.Floor(float64(cfg.SampleRate) * cfg.Length))
}

// Time returns the time in seconds of the sample at the index.
func (cfg Config) Time(i int) float64 {
	return float64(i) / float64(cfg.SampleRate)
}
