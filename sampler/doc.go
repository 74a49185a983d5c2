// Package sampler implements the negative-drawing strategies behind
// package negatives.
//
// Three interchangeable strategies satisfy one Strategy interface:
//
//   - PerSource — one negative target per unique positive source item,
//     drawn from the non-deduplicated positive target multiset minus the
//     source's forbidden targets. Preserves exact 1:1 per-source coverage;
//     the negative target marginal tracks the positive distribution.
//   - PerTarget — for each target, a batch of unique source items drawn
//     without replacement, preserving the per-target positive:negative
//     ratio at the cost of some sources appearing in several negatives.
//   - Augment — sources drawn from an external background pool that is,
//     by contract, never positively paired in-domain; no exclusion check
//     is needed, duplicate removal still applies.
//
// Determinism:
//
//	Every draw uses a rand.Rand seeded from a stable mix of the
//	invocation seed, the item's identity hash and the retry round — never
//	the item's enumeration position, so the seed schedule survives corpus
//	reordering. Identical inputs and seeds yield byte-identical draws.
//
// Strategies never fail: items without a permissible partner are logged,
// recorded in the Trace and skipped. Fatal conditions are the caller's
// concern (see package negatives).
package sampler
