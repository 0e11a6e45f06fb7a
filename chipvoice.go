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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/chipvoice/inspect"
	"github.com/jetsetilly/chipvoice/logger"
	"github.com/jetsetilly/chipvoice/modalflag"
	"github.com/jetsetilly/chipvoice/random"
	"github.com/jetsetilly/chipvoice/render"
	"github.com/jetsetilly/chipvoice/sampler"
	"github.com/jetsetilly/chipvoice/statsview"
	"github.com/jetsetilly/chipvoice/version"
	"github.com/jetsetilly/chipvoice/wavwriter"
)

const defaultOutput = "out.wav"

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc cancels a render in progress. the output file is not written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value to
// be used with os.Exit().
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RENDER", "INSPECT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RENDER":
		err = renderMode(ctx, md, output)

	case "INSPECT":
		err = inspectMode(md, output)

	case "VERSION":
		err = versionMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

func renderMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("the rendered audio is written to %s unless a filename is given", defaultOutput))

	voice := md.AddString("voice", sampler.VoiceSquare, fmt.Sprintf("voice to render: %s", strings.Join(sampler.Voices, ", ")))
	freq := md.AddFloat64("freq", sampler.DefaultFrequency, "frequency of the voice in Hz")
	volume := md.AddFloat64("volume", sampler.DefaultVolume, "volume of the voice")
	short := md.AddBool("short", false, "use the short noise sequence (noise only)")
	noiseVolume := md.AddBool("noisevolume", false, "apply volume to the noise voice (noise only)")
	dither := md.AddBool("dither", false, "dither the sine voice (sine only)")
	zeroSeed := md.AddBool("zeroseed", false, "use the same dithering on every run")
	rate := md.AddInt("rate", render.DefaultSampleRate, "sample rate in Hz")
	length := md.AddFloat64("length", render.DefaultLength, "length of the render in seconds")
	master := md.AddFloat64("master", render.DefaultMasterVolume, "master volume")
	workers := md.AddInt("workers", 1, "number of goroutines to render with (pure voices only)")
	log := md.AddBool("log", false, "echo log to output")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	mem := md.AddString("memviz", "", "write graphviz description of the voice after rendering")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	filename := defaultOutput
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	params := sampler.NewParams(*voice)
	params.Frequency = *freq
	params.Volume = *volume
	params.Short = *short
	params.ScaleByVolume = *noiseVolume
	if *dither {
		rnd := random.NewRandom()
		rnd.ZeroSeed = *zeroSeed
		params.Dither = rnd
	}

	s, err := params.Create()
	if err != nil {
		return err
	}

	r, err := render.NewRenderer(render.Config{
		SampleRate:   *rate,
		Length:       *length,
		MasterVolume: *master,
	})
	if err != nil {
		return err
	}

	data, err := r.RenderParallel(ctx, s, *workers)
	if err != nil {
		return err
	}

	aw, err := wavwriter.New(filename, *rate)
	if err != nil {
		return err
	}
	if _, err := aw.Write(data); err != nil {
		return err
	}
	if err := aw.Close(); err != nil {
		return err
	}

	if *mem != "" {
		if err := writeMemviz(*mem, s); err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "! %d samples written to %s\n", len(data), filename)

	return nil
}

// writeMemviz writes a graphviz description of the sampler's state.
func writeMemviz(filename string, s sampler.Sampler) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("memviz: %w", err)
		}
	}()

	memviz.Map(f, s)
	logger.Logf(logger.Allow, "memviz", "voice state written to %s", filename)

	return nil
}

func inspectMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("audio file required for %s mode", md)
	}

	for _, fn := range md.RemainingArgs() {
		sum, err := inspect.Load(fn)
		if err != nil {
			return err
		}
		io.WriteString(output, sum.String())
	}

	return nil
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())

	return nil
}
