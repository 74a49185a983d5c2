package sampler_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairgen/exclusion"
	"github.com/katalvlaran/pairgen/pairset"
	"github.com/katalvlaran/pairgen/sampler"
)

// quietOptions silences strategy warnings in tests.
func quietOptions(seed int64) sampler.Options {
	return sampler.Options{
		Seed:   seed,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// positiveCorpus is the canonical three-pair corpus: A and C bind X, B binds Y.
func positiveCorpus() *pairset.Corpus {
	return pairset.FromPairs(
		pairset.Pair{Source: "A", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "B", Target: "Y", Label: pairset.LabelPositive},
		pairset.Pair{Source: "C", Target: "X", Label: pairset.LabelPositive},
	)
}

// TestPerSource_RespectsExclusions verifies that no drawn pair recreates a
// known positive pairing and that every source gets exactly one attempt.
func TestPerSource_RespectsExclusions(t *testing.T) {
	positives := positiveCorpus()
	ix, err := exclusion.Build(positives.Clone(), positives)
	require.NoError(t, err)

	s := sampler.NewPerSource(positives, ix, quietOptions(7))
	got := s.FullRound()

	require.Len(t, got, 3, "one attempt per unique source")
	for _, p := range got {
		assert.Equal(t, pairset.LabelNegative, p.Label)
		_, bound := ix.ForbiddenTargets(p.Source)[p.Target]
		assert.False(t, bound, "drawn pair (%s,%s) recreates a positive", p.Source, p.Target)
	}

	// A and C are bound to X, so their only candidate is Y; B's only
	// candidate is X.
	assert.Equal(t, "Y", got[0].Target)
	assert.Equal(t, "X", got[1].Target)
	assert.Equal(t, "Y", got[2].Target)
}

// TestPerSource_Deterministic verifies that identical inputs and seeds
// yield identical draws, round by round.
func TestPerSource_Deterministic(t *testing.T) {
	positives := pairset.FromPairs(
		pairset.Pair{Source: "A", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "B", Target: "Y", Label: pairset.LabelPositive},
		pairset.Pair{Source: "C", Target: "Z", Label: pairset.LabelPositive},
		pairset.Pair{Source: "D", Target: "W", Label: pairset.LabelPositive},
	)
	ix, err := exclusion.Build(nil, positives)
	require.NoError(t, err)

	a := sampler.NewPerSource(positives, ix, quietOptions(42)).FullRound()
	b := sampler.NewPerSource(positives, ix, quietOptions(42)).FullRound()
	assert.Equal(t, a, b, "same seed must reproduce the draw exactly")

	s := sampler.NewPerSource(positives, ix, quietOptions(42))
	r1 := s.RetryRound(1, []string{"A", "B", "C", "D"})
	r2 := s.RetryRound(1, []string{"A", "B", "C", "D"})
	assert.Len(t, r1, 4)
	assert.Equal(t, r1, r2, "same round must reproduce the retry draw exactly")
	for _, p := range r1 {
		_, bound := ix.ForbiddenTargets(p.Source)[p.Target]
		assert.False(t, bound, "retry draw (%s,%s) recreates a positive", p.Source, p.Target)
	}
}

// TestPerSource_UnsatisfiableItem verifies that a source bound to every
// target is skipped and recorded, not fatal.
func TestPerSource_UnsatisfiableItem(t *testing.T) {
	positives := pairset.FromPairs(
		pairset.Pair{Source: "A", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "A", Target: "Y", Label: pairset.LabelPositive},
		pairset.Pair{Source: "B", Target: "Y", Label: pairset.LabelPositive},
	)
	ix, err := exclusion.Build(nil, positives)
	require.NoError(t, err)

	s := sampler.NewPerSource(positives, ix, quietOptions(1))
	got := s.FullRound()

	require.Len(t, got, 1, "only B is satisfiable")
	assert.Equal(t, "B", got[0].Source)
	assert.Equal(t, "X", got[0].Target, "B's only permitted target is X")
	assert.Equal(t, []string{"A"}, s.Trace().UnsatisfiableSources)
}

// TestPerSource_MultisetDistribution verifies that drawing happens over
// the unreduced target multiset: with target X occurring three times and
// Z once, X must dominate D's draws across seeds.
func TestPerSource_MultisetDistribution(t *testing.T) {
	positives := pairset.FromPairs(
		pairset.Pair{Source: "A", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "B", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "C", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "D", Target: "Z", Label: pairset.LabelPositive},
	)
	ix, err := exclusion.Build(nil, positives)
	require.NoError(t, err)

	// D's candidates are the multiset {X, X, X}; every draw must be X.
	for seed := int64(1); seed <= 16; seed++ {
		s := sampler.NewPerSource(positives, ix, quietOptions(seed))
		got := s.RetryRound(1, []string{"D"})
		require.Len(t, got, 1)
		assert.Equal(t, "X", got[0].Target)
	}
}
