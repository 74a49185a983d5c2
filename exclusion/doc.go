// Package exclusion builds the forbidden-partner index that keeps
// manufactured negatives from recreating a true positive pair.
//
// Build derives, from a reference corpus merged with the working positive
// set, two symmetric lookups:
//
//	ForbiddenTargets(source) — targets the source is positively paired with
//	ForbiddenSources(target) — sources the target is positively paired with
//
// The index is a pure function of its inputs, built once per generation
// run and read-only afterward. An absent key means "no known positive
// partner": everything is permitted.
package exclusion
