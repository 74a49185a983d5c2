package corpusio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/pairgen/pairset"
)

// ReadPairs parses a separated-value pair table from r.
//
// Contracts:
//   - The first record is a header; source and target columns are located
//     by name from opts. A missing column fails with ErrMissingColumn.
//   - label ≥ 0 forces that label onto every row (the usual case: a
//     positive or reference corpus carries no label column). label < 0
//     reads the label from opts.LabelColumn instead; values other than
//     "0"/"1" fail with ErrBadLabel.
//   - Duplicate (source, target) keys keep the first occurrence.
//
// Complexity: O(rows).
func ReadPairs(r io.Reader, label int, opts Options) (*pairset.Corpus, error) {
	o := opts.resolve()

	cr := csv.NewReader(r)
	cr.Comma = o.Comma

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("corpusio: reading header: %w", err)
	}

	srcIdx, err := columnIndex(header, o.SourceColumn)
	if err != nil {
		return nil, err
	}
	tgtIdx, err := columnIndex(header, o.TargetColumn)
	if err != nil {
		return nil, err
	}
	lblIdx := -1
	if label < 0 {
		if lblIdx, err = columnIndex(header, o.LabelColumn); err != nil {
			return nil, err
		}
	}

	out := pairset.New(0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpusio: reading record: %w", err)
		}

		l := label
		if lblIdx >= 0 {
			switch record[lblIdx] {
			case "0":
				l = pairset.LabelNegative
			case "1":
				l = pairset.LabelPositive
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadLabel, record[lblIdx])
			}
		}

		out.Append(pairset.Pair{Source: record[srcIdx], Target: record[tgtIdx], Label: l})
	}

	return out, nil
}

// ReadBackground parses a single-column background pool from r, trimming
// items outside the inclusive [minLen, maxLen] byte-length range; a bound
// of 0 (or negative) disables that side.
//
// Complexity: O(rows).
func ReadBackground(r io.Reader, column string, minLen, maxLen int, opts Options) ([]string, error) {
	o := opts.resolve()
	if column == "" {
		column = o.SourceColumn
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("corpusio: reading header: %w", err)
	}

	idx, err := columnIndex(header, column)
	if err != nil {
		return nil, err
	}

	var out []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpusio: reading record: %w", err)
		}

		item := record[idx]
		if minLen > 0 && len(item) < minLen {
			continue
		}
		if maxLen > 0 && len(item) > maxLen {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// columnIndex locates name in header.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
