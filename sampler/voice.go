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

package sampler

import (
	"strings"

	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/random"
)

// Voice names accepted by Params.
const (
	VoiceSilence  = "SILENCE"
	VoiceSine     = "SINE"
	VoiceSquare   = "SQUARE"
	VoiceTriangle = "TRIANGLE"
	VoiceNoise    = "NOISE"
)

// Voices lists the accepted voice names.
var Voices = []string{VoiceSilence, VoiceSine, VoiceSquare, VoiceTriangle, VoiceNoise}

// the default frequency (middle C) and volume set by NewParams()
const (
	DefaultFrequency = 261.6
	DefaultVolume    = 1.0
)

// Params describes a voice. It is used to create a Sampler when the type of
// generator is not known until runtime, for example when it has been chosen
// on the command line.
type Params struct {
	// one of the Voice* values. case insensitive
	Voice string

	Frequency float64
	Volume    float64

	// noise generator only. select the short LFSR sequence and whether the
	// volume is applied to the output
	Short         bool
	ScaleByVolume bool

	// sine generator only. dithering is applied when this is not nil
	Dither *random.Random
}

// NewParams returns a Params instance with the default frequency and volume.
func NewParams(voice string) Params {
	return Params{
		Voice:     voice,
		Frequency: DefaultFrequency,
		Volume:    DefaultVolume,
	}
}

// Create a new Sampler from the Params.
func (p Params) Create() (Sampler, error) {
	switch strings.ToUpper(p.Voice) {
	case VoiceSilence:
		return Silence{}, nil

	case VoiceSine:
		s, err := NewSine(p.Frequency, p.Volume)
		if err != nil {
			return nil, err
		}
		s.SetDither(p.Dither)
		return s, nil

	case VoiceSquare:
		s, err := NewSquare(p.Frequency, p.Volume)
		if err != nil {
			return nil, err
		}
		return s, nil

	case VoiceTriangle:
		s, err := NewTriangle(p.Frequency, p.Volume)
		if err != nil {
			return nil, err
		}
		return s, nil

	case VoiceNoise:
		n, err := NewNoise(p.Frequency, p.Volume, p.Short)
		if err != nil {
			return nil, err
		}
		n.ScaleByVolume = p.ScaleByVolume
		return n, nil
	}

	return nil, curated.Errorf(UnknownVoice, p.Voice)
}
