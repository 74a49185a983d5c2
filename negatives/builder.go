package negatives

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pairgen/exclusion"
	"github.com/katalvlaran/pairgen/pairset"
	"github.com/katalvlaran/pairgen/sampler"
)

// Build generates negatives for positives and returns the augmented
// corpus, positives before negatives.
//
// Contracts:
//   - positives must be non-nil and hold only positive rows.
//   - reference enumerates known positive pairings for exclusion; it is
//     merged with positives before indexing and never mutated. It is
//     ignored by Augment mode (the background pool is contractually
//     unpaired) and may be nil.
//   - opts == nil selects DefaultOptions; zero thresholds resolve to the
//     defaults, negative or inverted thresholds are rejected.
//   - A corpus with fewer than two distinct targets cannot produce
//     negatives by recombination: Build warns and returns a clone of the
//     input unchanged (Report.Skipped), rather than failing a whole
//     training run.
//
// Errors: validation sentinels (ErrNilCorpus, ErrNotPositive,
// ErrUnknownMode, ErrBadThresholds, ErrNoBackground,
// exclusion.ErrLabelledReference) fail fast; ErrPositiveDuplicate and
// ErrFalseNegative are invariant violations and always propagate.
// Unsatisfiable items, clipped pools and retry exhaustion are warnings in
// the log and fields in the Report, never errors.
//
// Complexity: O(n) setup plus the per-round strategy cost, bounded by the
// hard retry limit.
func Build(positives, reference *pairset.Corpus, mode Mode, opts *Options) (*pairset.Corpus, Report, error) {
	rep := Report{Mode: mode}

	o, err := resolveOptions(opts)
	if err != nil {
		return nil, rep, err
	}
	logger := o.Logger

	// Stage 1 - boundary validation.
	if positives == nil {
		return nil, rep, ErrNilCorpus
	}
	switch mode {
	case PerSource, PerTarget:
		// Exclusion-backed modes need nothing beyond the corpora.
	case Augment:
		if len(o.Background) == 0 {
			return nil, rep, ErrNoBackground
		}
	default:
		return nil, rep, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	// Stage 2 - seed the working set, positives first. The arena rejects
	// duplicate keys, so a repeated positive pair surfaces here.
	working := pairset.New(2 * positives.Len())
	for i := 0; i < positives.Len(); i++ {
		p := positives.At(i)
		if !p.Positive() {
			return nil, rep, fmt.Errorf("%w: row %d (%s, %s)", ErrNotPositive, i, p.Source, p.Target)
		}
		if _, fresh := working.Append(p); !fresh {
			return nil, rep, fmt.Errorf("%w: positive pair (%s, %s) appears twice", ErrPositiveDuplicate, p.Source, p.Target)
		}
	}

	// Stage 3 - recombination needs at least two distinct targets.
	if len(working.UniqueTargets()) < 2 {
		logger.Warn("cannot generate negatives by recombination with fewer than two distinct targets; returning input unchanged",
			slog.String("mode", mode.String()),
			slog.Int("positives", working.Positives()),
		)
		rep.Skipped = true

		return working, rep, nil
	}

	// Stage 4 - build the strategy (and, for in-domain modes, the
	// exclusion index — once per invocation).
	sopts := sampler.Options{Seed: o.Seed, Logger: logger}

	var (
		strat sampler.Strategy
		index *exclusion.Index
	)
	switch mode {
	case PerSource, PerTarget:
		index, err = exclusion.Build(reference, working)
		if err != nil {
			return nil, rep, err
		}
		if mode == PerSource {
			strat = sampler.NewPerSource(working, index, sopts)
			rep.Requested = len(working.UniqueSources())
		} else {
			strat = sampler.NewPerTarget(working, index, sopts)
			rep.Requested = working.Positives()
		}
	case Augment:
		amount := o.Amount
		if amount <= 0 {
			amount = working.Positives()
		}
		strat = sampler.NewAugment(working, o.Background, amount, sopts)
		rep.Requested = amount
	}

	logger.Info("generating negatives",
		slog.String("mode", mode.String()),
		slog.Int("positives", working.Positives()),
		slog.Int("requested", rep.Requested),
	)

	// Stage 5 - drive the convergence loop.
	if err = converge(working, strat, o, logger, &rep); err != nil {
		return nil, rep, err
	}

	tr := strat.Trace()
	rep.Unsatisfiable = tr.UnsatisfiableSources
	rep.SkippedTargets = tr.SkippedTargets
	rep.ClippedTargets = tr.ClippedTargets
	rep.Generated = working.Negatives()
	if rep.Shortfall = rep.Requested - rep.Generated; rep.Shortfall < 0 {
		rep.Shortfall = 0
	}

	// Stage 6 - post-hoc invariant sweep: no generated negative may
	// duplicate a known positive pairing. A hit is a logic defect, not a
	// recoverable condition.
	if index != nil {
		if err = verifyNoFalseNegatives(working, index); err != nil {
			return nil, rep, err
		}
	}

	logger.Info("negative generation finished",
		slog.String("mode", mode.String()),
		slog.Int("generated", rep.Generated),
		slog.Int("shortfall", rep.Shortfall),
		slog.Int("rounds", rep.Rounds),
	)

	return working, rep, nil
}

// resolveOptions applies nil/zero defaults and validates the thresholds.
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.SoftRetryLimit == 0 {
		o.SoftRetryLimit = DefaultSoftRetryLimit
	}
	if o.HardRetryLimit == 0 {
		o.HardRetryLimit = DefaultHardRetryLimit
	}
	if o.SoftRetryLimit < 0 || o.HardRetryLimit < 0 || o.SoftRetryLimit > o.HardRetryLimit {
		return o, fmt.Errorf("%w: soft=%d hard=%d", ErrBadThresholds, o.SoftRetryLimit, o.HardRetryLimit)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o, nil
}

// verifyNoFalseNegatives sweeps the negative rows against the exclusion
// index.
//
// Complexity: O(n).
func verifyNoFalseNegatives(working *pairset.Corpus, index *exclusion.Index) error {
	for i := 0; i < working.Len(); i++ {
		p := working.At(i)
		if p.Positive() {
			continue
		}
		if _, bound := index.ForbiddenTargets(p.Source)[p.Target]; bound {
			return fmt.Errorf("%w: (%s, %s)", ErrFalseNegative, p.Source, p.Target)
		}
	}

	return nil
}
