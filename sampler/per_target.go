package sampler

import (
	"log/slog"

	"github.com/katalvlaran/pairgen/exclusion"
	"github.com/katalvlaran/pairgen/pairset"
)

// PerTarget draws, for each unique target t with n positive rows, n unique
// source items not positively paired with t.
//
// Drawing is without replacement within a target, so the strategy can
// never propose a duplicate and converges in a single round. The per-target
// positive:negative ratio is exact except where the pool runs short
// (clipped, reported) or empty (skipped, reported). A source item may
// serve as the negative partner of several targets; that is the deliberate
// trade-off against PerSource's 1:1 coverage.
type PerTarget struct {
	positives *pairset.Corpus
	index     *exclusion.Index
	seed      int64
	logger    *slog.Logger
	trace     Trace
}

// NewPerTarget builds the strategy over the given positive corpus and
// exclusion index.
func NewPerTarget(positives *pairset.Corpus, index *exclusion.Index, opts Options) *PerTarget {
	o := opts.resolve()

	return &PerTarget{
		positives: positives,
		index:     index,
		seed:      o.Seed,
		logger:    o.Logger,
	}
}

// Name implements Strategy.
func (s *PerTarget) Name() string { return "per-target" }

// Retryable implements Strategy. Without-replacement draws cannot collide,
// so there is nothing to retry.
func (s *PerTarget) Retryable() bool { return false }

// Trace implements Strategy.
func (s *PerTarget) Trace() *Trace { return &s.trace }

// RetryRound implements Strategy; PerTarget never collides.
func (s *PerTarget) RetryRound(int, []string) []pairset.Pair { return nil }

// FullRound draws the complete negative batch for every unique target in
// first-appearance order.
//
// Complexity: O(t·u) worst case (t unique targets, u unique sources).
func (s *PerTarget) FullRound() []pairset.Pair {
	sources := s.positives.UniqueSources()

	// Positive row count per target drives the requested batch sizes.
	counts := make(map[string]int, len(sources))
	for _, t := range s.positives.PositiveTargets() {
		counts[t]++
	}

	out := make([]pairset.Pair, 0, s.positives.Positives())
	for _, target := range s.positives.UniqueTargets() {
		forbidden := s.index.ForbiddenSources(target)

		pool := make([]string, 0, len(sources))
		for _, src := range sources {
			if _, bound := forbidden[src]; !bound {
				pool = append(pool, src)
			}
		}

		if len(pool) == 0 {
			s.logger.Warn("target item is paired with every source and is discarded from the negatives",
				slog.String("strategy", s.Name()),
				slog.String("target", target),
			)
			s.trace.SkippedTargets = appendUnique(s.trace.SkippedTargets, target)

			continue
		}

		n := counts[target]
		if n > len(pool) {
			s.logger.Warn("target pool smaller than its positive count; per-target ratio clipped",
				slog.String("strategy", s.Name()),
				slog.String("target", target),
				slog.Int("requested", n),
				slog.Int("pool", len(pool)),
			)
			s.trace.ClippedTargets = appendUnique(s.trace.ClippedTargets, target)
			n = len(pool)
		}

		// Without replacement: shuffle deterministically, take the prefix.
		shuffleStringsInPlace(pool, rngFor(s.seed, target, 0))
		for _, src := range pool[:n] {
			out = append(out, pairset.Pair{Source: src, Target: target, Label: pairset.LabelNegative})
		}
	}

	return out
}
