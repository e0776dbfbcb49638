package engine

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fretwork/classify"
	"github.com/katalvlaran/fretwork/fingering"
	"github.com/katalvlaran/fretwork/generate"
	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/rank"
	"github.com/katalvlaran/fretwork/voicing"
)

// Options configures an Engine. Construct via DefaultOptions and the
// With* functional options; a zero Options is not usable.
type Options struct {
	// Tuning is the instrument the engine generates for.
	Tuning pitch.Tuning

	// Workers bounds the fingering/classification fan-out.
	Workers int

	// Log receives structured progress events; defaults to a no-op.
	Log *zap.Logger

	// Stages is the ranking chain applied to every run.
	Stages []rank.Stage
}

// DefaultOptions returns the stock configuration: standard guitar
// tuning, one worker per CPU, no logging, default ranking stages.
func DefaultOptions() Options {
	return Options{
		Tuning:  pitch.StandardGuitar(),
		Workers: runtime.GOMAXPROCS(0),
		Log:     zap.NewNop(),
		Stages:  rank.DefaultStages(),
	}
}

// Option mutates Options during New. Constructors panic only on
// nonsensical values (programmer error); tuning validation happens in
// New with sentinel errors.
type Option func(*Options)

// WithTuning sets the instrument tuning.
func WithTuning(t pitch.Tuning) Option {
	return func(o *Options) { o.Tuning = t }
}

// WithWorkers caps the parallel fingering fan-out. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("engine: worker count must be positive")
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the structured logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Log = l
	}
}

// WithStages replaces the ranking chain.
func WithStages(stages []rank.Stage) Option {
	return func(o *Options) {
		o.Stages = make([]rank.Stage, len(stages))
		copy(o.Stages, stages)
	}
}

// Engine runs the voicing pipeline for one instrument configuration. It
// holds only immutable options and is safe for concurrent Generate calls.
type Engine struct {
	opts Options
}

// New builds an Engine, validating the tuning up front.
//
// Errors: pitch.ErrEmptyTuning.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Tuning.Validate(); err != nil {
		return nil, err
	}

	return &Engine{opts: o}, nil
}

// Tuning returns the engine's instrument tuning.
func (e *Engine) Tuning() pitch.Tuning { return e.opts.Tuning }

// Generate runs the full pipeline for spec and returns the ranked,
// immutable collection. The result is a pure function of (tuning, spec):
// identical inputs produce identical ordered output.
//
// Contract:
//   - spec must pass Validate; the engine fails fast before any
//     enumeration work.
//   - ctx cancels both the enumeration walk and the fingering fan-out;
//     on cancellation the first ctx error is returned.
//
// Errors: voicing sentinel set, pitch.ErrEmptyTuning, context errors.
func (e *Engine) Generate(ctx context.Context, spec voicing.Spec) (*voicing.Collection, error) {
	start := time.Now()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	raw, err := generate.Voicings(ctx, e.opts.Tuning, spec)
	if err != nil {
		return nil, err
	}
	e.opts.Log.Debug("candidates enumerated",
		zap.String("root", spec.Root.String()),
		zap.Int("candidates", len(raw)),
	)

	// Each voicing is optimized and classified in isolation, so the only
	// shared state is the disjoint slice slots the workers write into.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for _, v := range raw {
		v := v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fingering.Optimize(v)
			classify.Classify(v, spec.Qualities)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := rank.Apply(raw, spec, e.opts.Stages)
	e.opts.Log.Info("generation complete",
		zap.String("root", spec.Root.String()),
		zap.Int("candidates", len(raw)),
		zap.Int("voicings", len(ranked)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return voicing.NewCollection(ranked), nil
}
