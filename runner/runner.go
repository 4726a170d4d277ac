package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geogen/confgen"
	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/parse"
	"github.com/katalvlaran/geogen/picture"
	"github.com/katalvlaran/geogen/prover"
	"github.com/katalvlaran/geogen/term"
)

// job is one generated configuration with its emission index.
type job struct {
	idx int
	cfg *term.Configuration
}

// analysis is the classified theorem set of one realized configuration.
type analysis struct {
	idx      int
	cfg      *term.Configuration
	theorems []term.Theorem
	classes  []prover.Classification
}

// Run processes the parsed inputs sequentially and writes one report per
// input. Configuration analysis inside an input fans out over Workers.
func Run(inputs []*parse.Input, lib *prover.Library, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	for _, in := range inputs {
		if err := runInput(in, lib, o); err != nil {
			return err
		}
	}
	return nil
}

// runInput analyzes one input end to end and writes its report.
func runInput(in *parse.Input, lib *prover.Library, o Options) error {
	log := o.Log.With("input", in.ID)

	// per-input seed stream, stable across input ordering
	baseSeed := o.Seed ^ int64(xxhash.Sum64String(in.ID))

	initial, err := analyze(o.Ctx, lib, in.Config, geom.NewStreamRNG(baseSeed, 0), o.Pictures)
	if errors.Is(err, picture.ErrUnresolvedInconsistency) {
		// nothing to report without a realized initial configuration
		return fmt.Errorf("%w: input %s: %v", ErrInitialRealization, in.ID, err)
	}
	if err != nil {
		return err
	}
	if initial == nil {
		return fmt.Errorf("%w: input %s", ErrInitialRealization, in.ID)
	}
	log.Info("initial configuration realized",
		"objects", len(in.Config.Objects()), "theorems", len(initial.theorems))

	blocks, err := generate(in, lib, o, baseSeed, log)
	if err != nil {
		return err
	}
	log.Info("generation finished", "configurations", len(blocks))

	return writeReport(in, o, initial, blocks)
}

// generate streams the symbolic generator through the worker pool and
// returns the analyses of all realized configurations, in emission order.
func generate(in *parse.Input, lib *prover.Library, o Options, baseSeed int64, log logger) ([]*analysis, error) {
	if o.Iterations == 0 || len(in.Rules) == 0 {
		return nil, nil
	}

	gen, err := confgen.New(in.Config, in.Rules,
		confgen.WithIterations(o.Iterations), confgen.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(o.Ctx)
	jobs := make(chan job)

	g.Go(func() error {
		defer close(jobs)
		for idx := 1; ; idx++ {
			cfg, ok, err := gen.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			select {
			case jobs <- job{idx: idx, cfg: cfg}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	var (
		mu     sync.Mutex
		blocks []*analysis
	)
	for w := 0; w < o.Workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				ctx, cancel := context.WithTimeout(gctx, o.Timeout)
				a, err := analyze(ctx, lib, j.cfg, geom.NewStreamRNG(baseSeed, uint64(j.idx)), o.Pictures)
				cancel()
				if err != nil {
					if transient(err) && gctx.Err() == nil {
						log.Warn("configuration skipped", "index", j.idx, "cause", err)
						continue
					}
					return err
				}
				if a == nil {
					// inconstructible or duplicate-bearing: classified,
					// not reported
					log.Debug("configuration yields no block", "index", j.idx)
					continue
				}
				a.idx = j.idx
				mu.Lock()
				blocks = append(blocks, a)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].idx < blocks[j].idx })
	return blocks, nil
}

// analyze realizes one configuration, finds its theorems, and classifies
// the fresh ones. A nil analysis (without error) means the configuration is
// inconstructible or duplicate-bearing and yields no report block.
func analyze(ctx context.Context, lib *prover.Library, cfg *term.Configuration, rng *rand.Rand, pictures int) (*analysis, error) {
	res, err := picture.Build(cfg,
		picture.WithContext(ctx), picture.WithCount(pictures), picture.WithRNG(rng))
	if err != nil {
		return nil, err
	}
	if res.Outcome != picture.OutcomeOK {
		return nil, nil
	}

	found := prover.Find(res.Set)
	fresh, background := prover.Split(cfg, found)

	// the fact base grows as fresh theorems are confirmed, so a pair of
	// fresh theorems cannot justify each other circularly
	facts := background
	a := &analysis{cfg: cfg, theorems: fresh, classes: make([]prover.Classification, len(fresh))}
	for i, th := range fresh {
		cls, err := prover.Classify(lib, cfg, th, facts)
		if err != nil {
			return nil, err
		}
		a.classes[i] = cls
		facts = append(facts, th)
	}
	return a, nil
}

// transient reports whether an analysis failure is confined to one
// configuration: the per-configuration deadline, or a picture set whose
// rebuild budget ran out. Such configurations are skipped with a warning;
// the run continues.
func transient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, picture.ErrUnresolvedInconsistency)
}

// logger is the subset of slog.Logger the pipeline needs.
type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}
