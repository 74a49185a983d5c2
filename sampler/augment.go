package sampler

import (
	"log/slog"

	"github.com/katalvlaran/pairgen/pairset"
)

// Stream identities for the Augment seed schedule. Augment has no natural
// per-item identity for its draws, so two fixed stream labels take that
// role in itemSeed.
const (
	augmentSourceStream = "augment/sources"
	augmentTargetStream = "augment/targets"
)

// Augment draws negative sources from an external background pool of items
// known to have no in-domain positive pairing, pairing each with a target
// drawn independently from the positive target multiset.
//
// By construction no false negative is possible, so Augment performs no
// exclusion check. Duplicate (background, target) combinations can still
// be drawn twice; the convergence loop removes those and asks for a
// redraw. Within one round sources are drawn without replacement; across
// rounds the pool is reused in full.
type Augment struct {
	background []string
	targets    []string // positive target multiset, snapshotted at construction
	amount     int
	seed       int64
	logger     *slog.Logger
	trace      Trace
}

// NewAugment builds the strategy. background must be non-empty (enforced
// upstream by negatives.Build); amount is the number of negatives the full
// round aims for.
func NewAugment(positives *pairset.Corpus, background []string, amount int, opts Options) *Augment {
	o := opts.resolve()

	return &Augment{
		background: background,
		targets:    positives.PositiveTargets(),
		amount:     amount,
		seed:       o.Seed,
		logger:     o.Logger,
	}
}

// Name implements Strategy.
func (s *Augment) Name() string { return "augment" }

// Retryable implements Strategy; fresh pool draws can replace collisions.
func (s *Augment) Retryable() bool { return true }

// Trace implements Strategy.
func (s *Augment) Trace() *Trace { return &s.trace }

// FullRound draws the full requested amount.
func (s *Augment) FullRound() []pairset.Pair {
	return s.draw(0, s.amount)
}

// RetryRound draws len(items) fresh replacement pairs; which background
// items collided is irrelevant, both sides are redrawn.
func (s *Augment) RetryRound(round int, items []string) []pairset.Pair {
	return s.draw(round, len(items))
}

// draw produces n (background, target) candidates for the given round.
// Sources: deterministic shuffle of the pool, first n taken (without
// replacement within the round). Targets: n independent uniform draws
// from the positive multiset.
//
// Complexity: O(|background| + n) time per round.
func (s *Augment) draw(round int, n int) []pairset.Pair {
	if n <= 0 {
		return nil
	}
	if n > len(s.background) {
		s.logger.Warn("background pool smaller than the requested amount; draw clipped",
			slog.String("strategy", s.Name()),
			slog.Int("requested", n),
			slog.Int("pool", len(s.background)),
		)
		n = len(s.background)
	}

	pool := make([]string, len(s.background))
	copy(pool, s.background)
	shuffleStringsInPlace(pool, rngFor(s.seed, augmentSourceStream, round))

	targetRNG := rngFor(s.seed, augmentTargetStream, round)
	out := make([]pairset.Pair, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pairset.Pair{
			Source: pool[i],
			Target: s.targets[targetRNG.Intn(len(s.targets))],
			Label:  pairset.LabelNegative,
		})
	}

	return out
}
