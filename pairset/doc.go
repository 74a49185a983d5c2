// Package pairset defines the labeled-pair data model shared by the whole
// module: the Pair value type and the Corpus arena.
//
// A Corpus is an append-only table of Pairs with an incrementally
// maintained first-occurrence index over (source, target) keys. Appending
// is O(1); duplicate keys are rejected at insertion time, so no pass over
// the table ever needs to rescan for duplicates.
//
// Ordering is part of the contract: rows keep insertion order, and the
// convergence loop in package negatives relies on positives being seeded
// before any negative is appended. All enumeration helpers
// (UniqueSources, UniqueTargets, …) return first-appearance order — map
// iteration order never leaks into results.
package pairset
