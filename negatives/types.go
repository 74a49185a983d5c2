package negatives

import (
	"errors"
	"fmt"
	"log/slog"
)

// Mode selects the negative-drawing strategy.
type Mode int

const (
	// PerSource draws one negative target per unique positive source item,
	// matching the positive target distribution (sampler.PerSource).
	PerSource Mode = iota

	// PerTarget draws a without-replacement batch of sources per target,
	// preserving per-target ratios (sampler.PerTarget).
	PerTarget

	// Augment draws sources from an external background pool with no
	// in-domain positive pairing (sampler.Augment).
	Augment
)

// String returns the canonical flag spelling of m.
func (m Mode) String() string {
	switch m {
	case PerSource:
		return "per-source"
	case PerTarget:
		return "per-target"
	case Augment:
		return "augment"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the canonical flag spelling back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "per-source":
		return PerSource, nil
	case "per-target":
		return PerTarget, nil
	case "augment":
		return Augment, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Default retry thresholds. Configuration, not business logic: override
// via Options.
const (
	// DefaultSoftRetryLimit is the round after which targeted resampling
	// gives way to random reseeding (with a warning).
	DefaultSoftRetryLimit = 50

	// DefaultHardRetryLimit is the round after which the remaining
	// shortfall is accepted and reported.
	DefaultHardRetryLimit = 100
)

// Sentinel errors. Check with errors.Is; implementations attach context
// via %w wrapping.
var (
	// ErrNilCorpus indicates a nil positive corpus.
	ErrNilCorpus = errors.New("negatives: positive corpus must be non-nil")

	// ErrNotPositive indicates a non-positive row inside the positive corpus.
	ErrNotPositive = errors.New("negatives: positive corpus must contain only positive pairs")

	// ErrUnknownMode indicates an unrecognized sampling mode.
	ErrUnknownMode = errors.New("negatives: unknown sampling mode")

	// ErrBadThresholds indicates an inconsistent retry configuration
	// (negative limits, or soft limit above the hard limit).
	ErrBadThresholds = errors.New("negatives: invalid retry thresholds")

	// ErrNoBackground indicates Augment mode without a background pool.
	ErrNoBackground = errors.New("negatives: augment mode requires a background pool")

	// ErrPositiveDuplicate indicates a duplicate involving a positive pair:
	// either the positive corpus repeated a key, or a proposed negative
	// collided with a positive row. Both are upstream modeling bugs and
	// abort loudly rather than being silently dropped.
	ErrPositiveDuplicate = errors.New("negatives: duplicate involving a positive pair")

	// ErrFalseNegative indicates that the post-hoc invariant sweep found a
	// generated negative that duplicates a known positive pairing, which
	// is a logic defect in the engine itself.
	ErrFalseNegative = errors.New("negatives: generated negative duplicates a known positive pairing")
)

// Options configures one Build invocation.
//
// The zero value is not valid on its own; use DefaultOptions or pass nil
// to Build, which resolves zero limits to the defaults.
type Options struct {
	// Seed is the invocation seed; 0 selects a fixed default, so runs are
	// reproducible even without explicit seeding.
	Seed int64

	// SoftRetryLimit and HardRetryLimit bound the convergence loop.
	// 0 resolves to the package default; negative values are rejected.
	SoftRetryLimit int
	HardRetryLimit int

	// Amount is the number of negatives Augment mode aims for.
	// 0 resolves to the positive row count. Ignored by other modes.
	Amount int

	// Background is the external source pool for Augment mode.
	Background []string

	// Logger receives the engine's structured warnings. nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default Build configuration.
func DefaultOptions() Options {
	return Options{
		SoftRetryLimit: DefaultSoftRetryLimit,
		HardRetryLimit: DefaultHardRetryLimit,
	}
}

// Report captures the observable outcome of one Build invocation: the
// same facts the engine logs, machine-readable.
type Report struct {
	// Mode is the strategy that ran.
	Mode Mode

	// Requested and Generated count intended vs. achieved negatives;
	// Shortfall = Requested − Generated.
	Requested int
	Generated int
	Shortfall int

	// Rounds is the number of retry rounds consumed (0 = converged on the
	// first pass).
	Rounds int

	// Skipped is true when the corpus had fewer than two distinct targets
	// and was returned unchanged.
	Skipped bool

	// Unsatisfiable lists source items with no permissible target.
	Unsatisfiable []string

	// SkippedTargets lists targets whose source pool was empty.
	SkippedTargets []string

	// ClippedTargets lists targets whose pool could not cover their
	// positive count.
	ClippedTargets []string

	// Unresolved lists the items still outstanding when the hard retry
	// limit was exhausted.
	Unresolved []string
}
