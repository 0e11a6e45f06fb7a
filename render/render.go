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
	"context"
	"sync/atomic"

	"github.com/jetsetilly/chipvoice/curated"
	"github.com/jetsetilly/chipvoice/logger"
	"github.com/jetsetilly/chipvoice/sampler"
	"golang.org/x/sync/errgroup"
)

const logTag = "render"

// Error patterns returned by RenderParallel().
const (
	InvalidWorkers = "render: invalid number of workers (%d)"
	Interrupted    = "render: interrupted: %v"
)

// how often a worker checks whether it has been cancelled
const cancelCheck = 4096

// Renderer produces a buffer of 8-bit samples from a sampler.
type Renderer struct {
	cfg Config

	// suppress log entries made by the renderer
	Quiet bool

	// counts for the most recent render. atomic because RenderParallel()
	// updates them from more than one goroutine
	outOfRange atomic.Int64
	clamped    atomic.Int64
}

// NewRenderer is the preferred method of initialisation for the Renderer type.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg}, nil
}

// AllowLogging implements the logger.Permission interface.
func (r *Renderer) AllowLogging() bool {
	return !r.Quiet
}

// Config returns the configuration of the renderer.
func (r *Renderer) Config() Config {
	return r.cfg
}

// OutOfRange returns the number of amplitudes outside of the range -1 to 1 in
// the most recent render.
func (r *Renderer) OutOfRange() int {
	return int(r.outOfRange.Load())
}

// Clamped returns the number of samples in the most recent render that had to
// be clamped to fit in 8 bits.
func (r *Renderer) Clamped() int {
	return int(r.clamped.Load())
}

// Render the sampler sequentially from time zero. The length of the returned
// slice is Config.NumSamples().
func (r *Renderer) Render(s sampler.Sampler) []uint8 {
	r.begin(s)
	data := make([]uint8, r.cfg.NumSamples())

	// the background context is never cancelled so there can be no error
	_ = r.renderRange(context.Background(), s, data, 0)

	r.end(s)
	return data
}

// RenderParallel splits the render between the number of workers. If the
// sampler is not pure, or if there is only one worker, the render is performed
// sequentially in the same way as Render().
//
// The render is abandoned if the context is cancelled.
func (r *Renderer) RenderParallel(ctx context.Context, s sampler.Sampler, workers int) ([]uint8, error) {
	if workers < 1 {
		return nil, curated.Errorf(InvalidWorkers, workers)
	}

	if workers > 1 && !sampler.IsPure(s) {
		logger.Logf(r, logTag, "%v cannot be rendered in parallel", s)
		workers = 1
	}

	r.begin(s)
	data := make([]uint8, r.cfg.NumSamples())

	// contiguous chunks of the data are given to each worker. the last chunk
	// may be shorter than the others
	chunk := (len(data) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(data); start += chunk {
		end := min(start+chunk, len(data))
		g.Go(func() error {
			return r.renderRange(ctx, s, data[start:end], start)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Logf(r, logTag, "%v", err)
		return nil, curated.Errorf(Interrupted, err)
	}

	r.end(s)
	return data, nil
}

func (r *Renderer) begin(s sampler.Sampler) {
	r.outOfRange.Store(0)
	r.clamped.Store(0)
	logger.Logf(r, logTag, "%v: %d samples at %dHz", s, r.cfg.NumSamples(), r.cfg.SampleRate)
}

func (r *Renderer) end(s sampler.Sampler) {
	if n := r.outOfRange.Load(); n > 0 {
		logger.Logf(r, logTag, "%v: %d amplitudes outside of the range -1 to 1", s, n)
	}
	if n := r.clamped.Load(); n > 0 {
		logger.Logf(r, logTag, "%v: %d samples clamped", s, n)
	}
}

// renderRange fills data with samples beginning at the sample index offset.
func (r *Renderer) renderRange(ctx context.Context, s sampler.Sampler, data []uint8, offset int) error {
	var outOfRange, clamped int64

	for i := range data {
		if i%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		a := s.Sample(r.cfg.Time(offset + i))
		if !(a >= -1 && a <= 1) {
			outOfRange++
		}

		var c bool
		data[i], c = Quantise(a, r.cfg.MasterVolume)
		if c {
			clamped++
		}
	}

	r.outOfRange.Add(outOfRange)
	r.clamped.Add(clamped)

	return nil
}
