// Package corpusio reads and writes the tabular corpora the engine
// consumes: separated-value pair tables and single-column background
// pools.
//
// Column names and the separator are configuration, not fixed: Options
// defaults to the semicolon-separated layout with source_item /
// target_item / label headers, and every name can be overridden to match
// the dataset at hand.
//
// Reading deduplicates on the (source, target) key, keeping the first
// occurrence — the reference corpus is consumed for exclusion only, where
// repeats carry no information. All I/O happens before the engine runs;
// the engine itself never touches a file.
package corpusio
