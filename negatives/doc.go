// Package negatives is the entry point of the negative-pair generation
// engine: it seeds a working set from the positive corpus, builds the
// exclusion index once, dispatches a sampling strategy and drives the
// bounded-retry convergence loop until the requested negative count is
// reached or the retry budget is exhausted.
//
// The loop is an explicit state machine:
//
//	Sampling → Merging → CheckingDuplicates → {Converged | Retrying | Exhausted}
//
// Merging keeps the first occurrence of every (source, target) key, so an
// accidental collision is always resolved in favor of the earlier row; a
// collision against a positive row is a fatal invariant violation, never a
// silent repair. Up to the soft retry limit only the collided items are
// resampled; between the soft and hard limits an equally sized random
// subset of positive sources is drawn instead (exact 1:1 coverage is no
// longer guaranteed and a warning says so); past the hard limit the
// remaining shortfall is accepted, logged and reported.
//
// Everything is deterministic: two Build calls with identical inputs and
// the same seed produce identical corpora, row for row. No state survives
// a Build call.
package negatives
