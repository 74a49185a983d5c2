package negatives

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pairgen/pairset"
	"github.com/katalvlaran/pairgen/sampler"
)

// reseedStream names the RNG stream the loop uses once targeted retries
// give way to random reseeding.
const reseedStream = "loop/reseed"

// loopState enumerates the convergence-loop states.
type loopState int

const (
	stateSampling loopState = iota
	stateMerging
	stateChecking
	stateRetrying
	stateConverged
	stateExhausted
)

// String returns the state name for debug logging.
func (s loopState) String() string {
	switch s {
	case stateSampling:
		return "Sampling"
	case stateMerging:
		return "Merging"
	case stateChecking:
		return "CheckingDuplicates"
	case stateRetrying:
		return "Retrying"
	case stateConverged:
		return "Converged"
	case stateExhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("loopState(%d)", int(s))
	}
}

// converge drives strat round-by-round, merging proposals into working,
// until no proposal collides or the hard retry limit is spent.
//
// Contracts:
//   - working holds the seeded positives (and grows negatives only).
//   - o carries resolved thresholds (validated by Build).
//   - Termination is guaranteed: each iteration either converges or
//     advances round toward o.HardRetryLimit.
//
// Only ErrPositiveDuplicate can be returned; every other outcome is a
// best-effort result described in rep.
func converge(working *pairset.Corpus, strat sampler.Strategy, o Options, logger *slog.Logger, rep *Report) error {
	var (
		state      = stateSampling
		round      = 0
		proposals  []pairset.Pair
		retryItems []string
		collided   []string
		softWarned bool
	)

	for {
		switch state {
		case stateSampling:
			if round == 0 {
				proposals = strat.FullRound()
			} else {
				proposals = strat.RetryRound(round, retryItems)
			}
			state = stateMerging

		case stateMerging:
			collided = collided[:0]
			for _, p := range proposals {
				first, fresh := working.Append(p)
				if fresh {
					continue
				}
				if working.At(first).Positive() {
					// A proposed negative hit a positive row. The first
					// occurrence (the positive) survives untouched, but this
					// must never happen: exclusion forbids it for in-domain
					// strategies and the background-pool contract forbids it
					// for augmentation.
					return fmt.Errorf("%w: proposed negative (%s, %s) collides with a positive row",
						ErrPositiveDuplicate, p.Source, p.Target)
				}
				collided = append(collided, p.Source)
			}
			state = stateChecking

		case stateChecking:
			switch {
			case len(collided) == 0:
				state = stateConverged
			case !strat.Retryable():
				state = stateExhausted
			default:
				state = stateRetrying
			}

		case stateRetrying:
			round++
			if round > o.HardRetryLimit {
				state = stateExhausted

				continue
			}
			if round > o.SoftRetryLimit {
				if !softWarned {
					softWarned = true
					logger.Warn("soft retry limit reached; reseeding from random positive sources, exact per-item coverage no longer guaranteed",
						slog.String("strategy", strat.Name()),
						slog.Int("round", round),
						slog.Int("outstanding", len(collided)),
						slog.Any("items", append([]string(nil), collided...)),
					)
				}
				retryItems = reseedItems(working, len(collided), o.Seed, round)
			} else {
				retryItems = append(retryItems[:0], collided...)
			}
			state = stateSampling

		case stateConverged:
			rep.Rounds = round

			return nil

		case stateExhausted:
			rep.Rounds = round
			rep.Unresolved = append([]string(nil), collided...)
			logger.Warn("retry budget exhausted; accepting shortfall",
				slog.String("strategy", strat.Name()),
				slog.Int("rounds", round),
				slog.Int("shortfall", len(collided)),
				slog.Any("unresolved", rep.Unresolved),
			)

			return nil
		}
	}
}

// reseedItems draws n source items from the positive rows of working,
// without replacement, deterministically per round. Some of the drawn
// sources may already own a negative; reusing them is the accepted cost
// of the post-soft-limit phase.
func reseedItems(working *pairset.Corpus, n int, seed int64, round int) []string {
	rows := working.PositiveSources()
	if n > len(rows) {
		n = len(rows)
	}
	sampler.ShuffleStrings(rows, sampler.Stream(seed, reseedStream, round))

	return rows[:n]
}
