package sampler

import (
	"log/slog"

	"github.com/katalvlaran/pairgen/exclusion"
	"github.com/katalvlaran/pairgen/pairset"
)

// PerSource draws exactly one negative target per unique positive source
// item.
//
// Candidates for a source s are the non-deduplicated multiset of positive
// targets minus ForbiddenTargets(s): drawing from the multiset keeps the
// negative target marginal close to the positive one instead of flattening
// it to uniform over unique targets.
//
// Guarantee: one attempt per item per round; the result count is at most
// the item count, strictly less when some items are unsatisfiable.
type PerSource struct {
	positives *pairset.Corpus
	index     *exclusion.Index
	targets   []string // positive target multiset, snapshotted at construction
	seed      int64
	logger    *slog.Logger
	trace     Trace
}

// NewPerSource builds the strategy over the given positive corpus and
// exclusion index. The corpus must hold only positive rows at this point
// (the working set before any negative is merged); the target multiset is
// snapshotted once, so later merges cannot skew the candidate pool.
//
// Complexity: O(n) time and space.
func NewPerSource(positives *pairset.Corpus, index *exclusion.Index, opts Options) *PerSource {
	o := opts.resolve()

	return &PerSource{
		positives: positives,
		index:     index,
		targets:   positives.PositiveTargets(),
		seed:      o.Seed,
		logger:    o.Logger,
	}
}

// Name implements Strategy.
func (s *PerSource) Name() string { return "per-source" }

// Retryable implements Strategy; collided items can always be redrawn.
func (s *PerSource) Retryable() bool { return true }

// Trace implements Strategy.
func (s *PerSource) Trace() *Trace { return &s.trace }

// FullRound draws one candidate negative for every unique positive source
// item, in first-appearance order.
//
// Complexity: O(u·n) worst case (u unique sources, n positive rows).
func (s *PerSource) FullRound() []pairset.Pair {
	return s.draw(0, s.positives.UniqueSources())
}

// RetryRound redraws one candidate per given item with a round-advanced
// seed. items may contain repeats (the reseed phase samples positive rows,
// not unique sources); each occurrence yields one attempt.
func (s *PerSource) RetryRound(round int, items []string) []pairset.Pair {
	return s.draw(round, items)
}

// draw samples one target per item from the permitted part of the target
// multiset. The k-th permitted element is located by a counting pass, so
// no per-item candidate slice is allocated.
func (s *PerSource) draw(round int, items []string) []pairset.Pair {
	out := make([]pairset.Pair, 0, len(items))

	for _, item := range items {
		forbidden := s.index.ForbiddenTargets(item)

		// Count permitted candidates in the multiset.
		permitted := 0
		for _, t := range s.targets {
			if _, bound := forbidden[t]; !bound {
				permitted++
			}
		}

		if permitted == 0 {
			// Item is positively bound to every target: unsatisfiable.
			s.logger.Warn("source item is paired with every target and is discarded from the negatives",
				slog.String("strategy", s.Name()),
				slog.String("source", item),
			)
			s.trace.UnsatisfiableSources = appendUnique(s.trace.UnsatisfiableSources, item)

			continue
		}

		// Pick the k-th permitted element uniformly.
		k := rngFor(s.seed, item, round).Intn(permitted)
		for _, t := range s.targets {
			if _, bound := forbidden[t]; bound {
				continue
			}
			if k == 0 {
				out = append(out, pairset.Pair{Source: item, Target: t, Label: pairset.LabelNegative})

				break
			}
			k--
		}
	}

	return out
}
