package pairset

// Corpus is an append-only arena of Pairs with an incremental
// first-occurrence index over (source, target) keys.
//
// Contracts:
//   - Rows keep insertion order; nothing is ever removed or reordered.
//   - A (source, target) key is stored at most once; Append reports
//     collisions instead of storing duplicates, so the no-duplicate
//     invariant holds structurally at all times.
//   - Not safe for concurrent mutation; a Corpus is owned by exactly one
//     builder invocation.
type Corpus struct {
	pairs     []Pair
	first     map[pairKey]int // key -> index of first (only) occurrence
	positives int
}

// New returns an empty Corpus with capacity hint n (n ≤ 0 is allowed).
//
// Complexity: O(1).
func New(n int) *Corpus {
	if n < 0 {
		n = 0
	}

	return &Corpus{
		pairs: make([]Pair, 0, n),
		first: make(map[pairKey]int, n),
	}
}

// FromPairs builds a Corpus from the given pairs, keeping the first
// occurrence of every (source, target) key. Intended for tests and small
// in-memory setups; I/O paths live in package corpusio.
//
// Complexity: O(len(pairs)).
func FromPairs(pairs ...Pair) *Corpus {
	c := New(len(pairs))
	for _, p := range pairs {
		c.Append(p)
	}

	return c
}

// Append inserts p unless its (source, target) key is already present.
// It returns the index of the first occurrence of the key and whether the
// insertion actually happened. On a collision the stored row is untouched
// (first occurrence wins) — callers inspect At(first).Label to decide
// whether the collision is benign.
//
// Complexity: amortized O(1).
func (c *Corpus) Append(p Pair) (first int, fresh bool) {
	k := pairKey{source: p.Source, target: p.Target}
	if i, ok := c.first[k]; ok {
		return i, false
	}

	i := len(c.pairs)
	c.pairs = append(c.pairs, p)
	c.first[k] = i
	if p.Label == LabelPositive {
		c.positives++
	}

	return i, true
}

// Contains reports whether the (source, target) key is present,
// irrespective of label.
//
// Complexity: O(1).
func (c *Corpus) Contains(source, target string) bool {
	_, ok := c.first[pairKey{source: source, target: target}]

	return ok
}

// IndexOf returns the row index of the (source, target) key, if present.
//
// Complexity: O(1).
func (c *Corpus) IndexOf(source, target string) (int, bool) {
	i, ok := c.first[pairKey{source: source, target: target}]

	return i, ok
}

// At returns the i-th row. Panics on out-of-range, like a slice.
func (c *Corpus) At(i int) Pair { return c.pairs[i] }

// Len returns the total number of rows.
func (c *Corpus) Len() int { return len(c.pairs) }

// Positives returns the number of rows labeled LabelPositive.
func (c *Corpus) Positives() int { return c.positives }

// Negatives returns the number of rows labeled LabelNegative.
func (c *Corpus) Negatives() int { return len(c.pairs) - c.positives }

// Pairs returns a copy of all rows in insertion order. The copy keeps the
// arena immutable from the outside.
//
// Complexity: O(n) time and space.
func (c *Corpus) Pairs() []Pair {
	out := make([]Pair, len(c.pairs))
	copy(out, c.pairs)

	return out
}

// Clone returns an independent deep copy of c.
//
// Complexity: O(n) time and space.
func (c *Corpus) Clone() *Corpus {
	out := New(len(c.pairs))
	for _, p := range c.pairs {
		out.Append(p)
	}

	return out
}

// UniqueSources returns the distinct source items of the positive rows in
// first-appearance order.
//
// Complexity: O(n) time, O(u) space.
func (c *Corpus) UniqueSources() []string {
	seen := make(map[string]struct{}, len(c.pairs))
	out := make([]string, 0, len(c.pairs))
	for _, p := range c.pairs {
		if p.Label != LabelPositive {
			continue
		}
		if _, ok := seen[p.Source]; ok {
			continue
		}
		seen[p.Source] = struct{}{}
		out = append(out, p.Source)
	}

	return out
}

// UniqueTargets returns the distinct target items of the positive rows in
// first-appearance order.
//
// Complexity: O(n) time, O(u) space.
func (c *Corpus) UniqueTargets() []string {
	seen := make(map[string]struct{}, len(c.pairs))
	out := make([]string, 0, len(c.pairs))
	for _, p := range c.pairs {
		if p.Label != LabelPositive {
			continue
		}
		if _, ok := seen[p.Target]; ok {
			continue
		}
		seen[p.Target] = struct{}{}
		out = append(out, p.Target)
	}

	return out
}

// PositiveTargets returns the targets of all positive rows in row order,
// duplicates included. Sampling from this multiset keeps the negative
// target marginal close to the positive one (deduplicating here would
// flatten it to uniform).
//
// Complexity: O(n) time and space.
func (c *Corpus) PositiveTargets() []string {
	out := make([]string, 0, c.positives)
	for _, p := range c.pairs {
		if p.Label == LabelPositive {
			out = append(out, p.Target)
		}
	}

	return out
}

// PositiveSources returns the sources of all positive rows in row order,
// duplicates included.
//
// Complexity: O(n) time and space.
func (c *Corpus) PositiveSources() []string {
	out := make([]string, 0, c.positives)
	for _, p := range c.pairs {
		if p.Label == LabelPositive {
			out = append(out, p.Source)
		}
	}

	return out
}
