package corpusio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairgen/corpusio"
	"github.com/katalvlaran/pairgen/pairset"
)

// TestWritePairs_Golden checks the emitted table byte for byte: header
// first, then the rows in stored order.
func TestWritePairs_Golden(t *testing.T) {
	c := pairset.FromPairs(
		pairset.Pair{Source: "AAA", Target: "XXX", Label: pairset.LabelPositive},
		pairset.Pair{Source: "BBB", Target: "YYY", Label: pairset.LabelNegative},
	)

	var sb strings.Builder
	require.NoError(t, corpusio.WritePairs(&sb, c, corpusio.DefaultOptions()))

	want := "source_item;target_item;label\nAAA;XXX;1\nBBB;YYY;0\n"
	assert.Equal(t, want, sb.String())
}

// TestWritePairs_RoundTrip verifies that a written corpus reads back
// identically through the labeled-column path.
func TestWritePairs_RoundTrip(t *testing.T) {
	c := pairset.FromPairs(
		pairset.Pair{Source: "A", Target: "X", Label: pairset.LabelPositive},
		pairset.Pair{Source: "B", Target: "Y", Label: pairset.LabelPositive},
		pairset.Pair{Source: "A", Target: "Y", Label: pairset.LabelNegative},
	)

	var sb strings.Builder
	require.NoError(t, corpusio.WritePairs(&sb, c, corpusio.DefaultOptions()))

	back, err := corpusio.ReadPairs(strings.NewReader(sb.String()), -1, corpusio.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, c.Pairs(), back.Pairs())
}
