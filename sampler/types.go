package sampler

import (
	"log/slog"

	"github.com/katalvlaran/pairgen/pairset"
)

// Options configures a strategy at construction time.
type Options struct {
	// Seed is the invocation seed every per-item stream is derived from.
	// 0 selects a fixed default, so the zero Options value is reproducible.
	Seed int64

	// Logger receives non-fatal sampling warnings. nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default strategy configuration.
func DefaultOptions() Options { return Options{} }

// resolve applies the nil-logger default.
func (o Options) resolve() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Trace accumulates the non-fatal sampling events of one generation run,
// so callers can report them machine-readably alongside the log lines.
type Trace struct {
	// UnsatisfiableSources are source items with no permissible target:
	// they are excluded from the output, contributing zero negatives.
	UnsatisfiableSources []string

	// SkippedTargets are targets whose candidate pool was empty (bound to
	// every available source); all their intended negatives are dropped.
	SkippedTargets []string

	// ClippedTargets are targets whose pool was smaller than the requested
	// batch, so their per-target ratio could not be preserved exactly.
	ClippedTargets []string
}

// appendUnique appends v to a unless already present. The slices stay tiny
// (warning lists), so a linear scan beats carrying a set alongside.
func appendUnique(a []string, v string) []string {
	for _, x := range a {
		if x == v {
			return a
		}
	}

	return append(a, v)
}

// Strategy is one negative-drawing policy, driven round-by-round by the
// convergence loop in package negatives.
//
// Implementations are deterministic and never mutate the corpus they were
// built over; they only propose candidate pairs.
type Strategy interface {
	// Name identifies the strategy in log output.
	Name() string

	// FullRound draws the initial candidate set covering every item the
	// strategy is responsible for.
	FullRound() []pairset.Pair

	// RetryRound redraws candidates after collisions, advancing the seed
	// schedule by round. items are the source items whose earlier
	// proposals collided; strategies that cannot collide return nil.
	RetryRound(round int, items []string) []pairset.Pair

	// Retryable reports whether RetryRound can make progress at all.
	Retryable() bool

	// Trace exposes the non-fatal events recorded so far.
	Trace() *Trace
}
