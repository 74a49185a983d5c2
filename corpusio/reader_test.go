package corpusio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairgen/corpusio"
	"github.com/katalvlaran/pairgen/pairset"
)

// TestReadPairs_ForcedLabel reads an unlabeled table and forces the
// positive label onto every row.
func TestReadPairs_ForcedLabel(t *testing.T) {
	in := "source_item;target_item\nAAA;XXX\nBBB;YYY\n"

	c, err := corpusio.ReadPairs(strings.NewReader(in), pairset.LabelPositive, corpusio.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []pairset.Pair{
		{Source: "AAA", Target: "XXX", Label: pairset.LabelPositive},
		{Source: "BBB", Target: "YYY", Label: pairset.LabelPositive},
	}, c.Pairs())
}

// TestReadPairs_LabelColumn reads labels from the label column when the
// forced label is negative.
func TestReadPairs_LabelColumn(t *testing.T) {
	in := "source_item;target_item;label\nAAA;XXX;1\nBBB;YYY;0\n"

	c, err := corpusio.ReadPairs(strings.NewReader(in), -1, corpusio.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, pairset.LabelPositive, c.At(0).Label)
	assert.Equal(t, pairset.LabelNegative, c.At(1).Label)
}

// TestReadPairs_KeepFirstDuplicate verifies keep-first deduplication: a
// repeated (source, target) key keeps its first row, label included.
func TestReadPairs_KeepFirstDuplicate(t *testing.T) {
	in := "source_item;target_item;label\nAAA;XXX;1\nAAA;XXX;0\n"

	c, err := corpusio.ReadPairs(strings.NewReader(in), -1, corpusio.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, pairset.LabelPositive, c.At(0).Label)
}

// TestReadPairs_CustomColumns locates columns by the configured names and
// separator.
func TestReadPairs_CustomColumns(t *testing.T) {
	in := "extra,seq,motif\nignored,AAA,XXX\n"

	opts := corpusio.Options{Comma: ',', SourceColumn: "seq", TargetColumn: "motif"}
	c, err := corpusio.ReadPairs(strings.NewReader(in), pairset.LabelPositive, opts)
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, pairset.Pair{Source: "AAA", Target: "XXX", Label: pairset.LabelPositive}, c.At(0))
}

// TestReadPairs_Errors exercises the reader's sentinel errors.
func TestReadPairs_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := corpusio.ReadPairs(strings.NewReader(""), pairset.LabelPositive, corpusio.DefaultOptions())
		assert.ErrorIs(t, err, corpusio.ErrNoHeader)
	})

	t.Run("missing source column", func(t *testing.T) {
		in := "wrong;target_item\nAAA;XXX\n"
		_, err := corpusio.ReadPairs(strings.NewReader(in), pairset.LabelPositive, corpusio.DefaultOptions())
		assert.ErrorIs(t, err, corpusio.ErrMissingColumn)
	})

	t.Run("missing label column", func(t *testing.T) {
		in := "source_item;target_item\nAAA;XXX\n"
		_, err := corpusio.ReadPairs(strings.NewReader(in), -1, corpusio.DefaultOptions())
		assert.ErrorIs(t, err, corpusio.ErrMissingColumn)
	})

	t.Run("bad label value", func(t *testing.T) {
		in := "source_item;target_item;label\nAAA;XXX;positive\n"
		_, err := corpusio.ReadPairs(strings.NewReader(in), -1, corpusio.DefaultOptions())
		assert.ErrorIs(t, err, corpusio.ErrBadLabel)
	})
}

// TestReadBackground_LengthTrim verifies the inclusive byte-length window
// and that a bound of 0 disables its side.
func TestReadBackground_LengthTrim(t *testing.T) {
	in := "source_item\nAB\nABC\nABCD\nABCDE\n"

	t.Run("both bounds", func(t *testing.T) {
		pool, err := corpusio.ReadBackground(strings.NewReader(in), "", 3, 4, corpusio.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"ABC", "ABCD"}, pool)
	})

	t.Run("unbounded", func(t *testing.T) {
		pool, err := corpusio.ReadBackground(strings.NewReader(in), "", 0, 0, corpusio.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"AB", "ABC", "ABCD", "ABCDE"}, pool)
	})
}

// TestReadBackground_ExplicitColumn reads the pool from a named column
// instead of the default source column.
func TestReadBackground_ExplicitColumn(t *testing.T) {
	in := "id;sequence\n1;AAAA\n2;BBBB\n"

	pool, err := corpusio.ReadBackground(strings.NewReader(in), "sequence", 0, 0, corpusio.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "BBBB"}, pool)
}
