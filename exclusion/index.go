package exclusion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pairgen/pairset"
)

// ErrLabelledReference is returned when the reference corpus contains a
// non-positive row. The reference exists solely to enumerate known
// positive pairings; a negative row in it means the caller handed over an
// already-augmented table.
var ErrLabelledReference = errors.New("exclusion: reference corpus must contain only positive pairs")

// Index maps each item to the set of partners it is known to positively
// pair with. Read-only after Build.
type Index struct {
	bySource map[string]map[string]struct{}
	byTarget map[string]map[string]struct{}
}

// Build constructs an Index from reference merged with extra.
//
// Contracts:
//   - reference may be nil (treated as empty); every row it does contain
//     must be positive, otherwise ErrLabelledReference is returned with
//     the offending row's context attached.
//   - extra is the in-progress positive set; merging it matters when the
//     working set is not a subset of the reference (e.g. an external
//     validation fold). Only its positive rows contribute. nil is allowed.
//   - Duplicate pairings collapse naturally into the sets.
//
// Complexity: O(len(reference) + len(extra)) time and space.
func Build(reference, extra *pairset.Corpus) (*Index, error) {
	ix := &Index{
		bySource: make(map[string]map[string]struct{}),
		byTarget: make(map[string]map[string]struct{}),
	}

	if reference != nil {
		for i := 0; i < reference.Len(); i++ {
			p := reference.At(i)
			if !p.Positive() {
				return nil, fmt.Errorf("%w: row %d (%s, %s)", ErrLabelledReference, i, p.Source, p.Target)
			}
			ix.add(p.Source, p.Target)
		}
	}

	if extra != nil {
		for i := 0; i < extra.Len(); i++ {
			p := extra.At(i)
			if !p.Positive() {
				continue
			}
			ix.add(p.Source, p.Target)
		}
	}

	return ix, nil
}

// add records one positive pairing in both directions.
func (ix *Index) add(source, target string) {
	ts, ok := ix.bySource[source]
	if !ok {
		ts = make(map[string]struct{})
		ix.bySource[source] = ts
	}
	ts[target] = struct{}{}

	ss, ok := ix.byTarget[target]
	if !ok {
		ss = make(map[string]struct{})
		ix.byTarget[target] = ss
	}
	ss[source] = struct{}{}
}

// ForbiddenTargets returns the set of targets positively paired with
// source. The returned map is nil when the source is unknown; membership
// tests against a nil map are valid, so callers never need a presence
// check. Callers must not mutate the result.
//
// Complexity: O(1).
func (ix *Index) ForbiddenTargets(source string) map[string]struct{} {
	return ix.bySource[source]
}

// ForbiddenSources returns the set of sources positively paired with
// target, with the same nil-map contract as ForbiddenTargets.
//
// Complexity: O(1).
func (ix *Index) ForbiddenSources(target string) map[string]struct{} {
	return ix.byTarget[target]
}
