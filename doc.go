// Package pairgen prepares training data for binary sequence-pair
// classifiers by manufacturing plausible negative pairs from an observed
// positive pool — provably never recreating a true positive pair.
//
// 🚀 What is pairgen?
//
//	A small, deterministic library that brings together:
//		• pairset   — the labeled-pair data model: an append-only corpus arena
//		              with an incremental duplicate index
//		• exclusion — forbidden-partner lookup derived from a reference corpus
//		• sampler   — interchangeable negative-drawing strategies
//		              (per-source, per-target, background augmentation)
//		• negatives — the bounded-retry convergence loop and the single
//		              Build entry point
//		• corpusio  — CSV/TSV corpus and background-pool I/O
//
// ✨ Why choose pairgen?
//
//   - Deterministic — every draw is seeded from a stable hash of
//     (invocation seed, item identity, retry round); identical inputs
//     produce identical outputs, row for row
//   - Honest — shortfalls, unsatisfiable items and clipped pools are
//     reported and logged, never silently dropped
//   - Pure Go engine — no I/O, no globals, no hidden randomness
//
// The typical flow:
//
//	positives, _ := corpusio.ReadPairs(f, pairset.LabelPositive, corpusio.DefaultOptions())
//	reference, _ := corpusio.ReadPairs(g, pairset.LabelPositive, corpusio.DefaultOptions())
//	out, report, err := negatives.Build(positives, reference, negatives.PerSource, nil)
//
// Dive into each package's doc.go for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/pairgen
package pairgen
