package export

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/render"
)

// Job names one (mode, algorithm) pair to render.
type Job struct {
	Mode      string
	Algorithm string
}

func (j Job) String() string { return j.Mode + "-" + j.Algorithm }

// Result is the outcome of one Job. Err is set instead of SVG when the
// pair failed to select or draw.
type Result struct {
	Job
	SVG *SVG
	Err error
}

// Gallery renders many pairs at the same time and size. Every job gets
// its own session seeded Seed plus its index, so runs are repeatable.
type Gallery struct {
	Registry   *engine.Registry
	Logger     *log.Logger
	Eval       evaluator.Func
	Params     engine.Params
	Seed       uint64
	W, H       float64
	At         float64
	FPS        int
	Background render.Color
	// Workers caps concurrent renders; zero means GOMAXPROCS.
	Workers int
}

// Jobs lists every algorithm of every registered mode in menu order.
func (g *Gallery) Jobs() []Job {
	var jobs []Job
	for _, m := range g.Registry.Modes() {
		for _, a := range m.Algorithms {
			jobs = append(jobs, Job{Mode: m.ID, Algorithm: a.ID})
		}
	}
	return jobs
}

// Run renders jobs and returns one Result per job, in order. It stops
// handing out work once ctx is done and returns ctx's error.
func (g *Gallery) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			svg, err := g.render(job, g.Seed+uint64(i))
			if err != nil {
				logger.Warn("render failed", "job", job, "err", err)
			}
			results[i] = Result{Job: job, SVG: svg, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, ctx.Err()
}

func (g *Gallery) render(job Job, seed uint64) (*SVG, error) {
	sess := engine.NewSession(g.Registry, g.Logger, seed)
	sess.SetParams(g.Params)
	if err := sess.Select(job.Mode, job.Algorithm, engine.Bounds{W: g.W, H: g.H}); err != nil {
		return nil, err
	}
	d := engine.NewDriver(sess)
	d.Eval = g.Eval
	d.AdaptiveCentering = false

	svg, err := Snapshot(d, g.W, g.H, g.At, g.FPS, g.Background)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job, err)
	}
	return svg, nil
}
