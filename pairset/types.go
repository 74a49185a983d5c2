package pairset

// Class labels carried by Pair. The numeric values are part of the on-disk
// contract (see package corpusio) and must not change.
const (
	// LabelNegative marks a manufactured (recombined) pair.
	LabelNegative = 0

	// LabelPositive marks an observed pair.
	LabelPositive = 1
)

// Pair is one labeled (source, target) observation. Immutable once built.
type Pair struct {
	// Source is the source-domain item (e.g. a CDR3 sequence).
	Source string

	// Target is the target-domain item (e.g. an epitope sequence).
	Target string

	// Label is LabelPositive or LabelNegative.
	Label int
}

// Positive reports whether p carries the positive label.
func (p Pair) Positive() bool { return p.Label == LabelPositive }

// pairKey identifies a (source, target) combination irrespective of label.
type pairKey struct {
	source string
	target string
}
