package corpusio

import "errors"

// Sentinel errors. Check with errors.Is; readers attach the column or
// value context via %w wrapping.
var (
	// ErrNoHeader indicates an input without a header row.
	ErrNoHeader = errors.New("corpusio: input has no header row")

	// ErrMissingColumn indicates a required column absent from the header.
	ErrMissingColumn = errors.New("corpusio: required column missing")

	// ErrBadLabel indicates a label value that is neither 0 nor 1.
	ErrBadLabel = errors.New("corpusio: label value is not a recognized class")
)

// Options configures the tabular layout.
type Options struct {
	// Comma is the field separator.
	Comma rune

	// SourceColumn, TargetColumn and LabelColumn are the header names of
	// the respective fields.
	SourceColumn string
	TargetColumn string
	LabelColumn  string
}

// DefaultOptions returns the canonical layout: semicolon-separated with
// source_item / target_item / label headers.
func DefaultOptions() Options {
	return Options{
		Comma:        ';',
		SourceColumn: "source_item",
		TargetColumn: "target_item",
		LabelColumn:  "label",
	}
}

// resolve fills zero-valued fields with the defaults, so a partially
// overridden Options literal stays usable.
func (o Options) resolve() Options {
	d := DefaultOptions()
	if o.Comma == 0 {
		o.Comma = d.Comma
	}
	if o.SourceColumn == "" {
		o.SourceColumn = d.SourceColumn
	}
	if o.TargetColumn == "" {
		o.TargetColumn = d.TargetColumn
	}
	if o.LabelColumn == "" {
		o.LabelColumn = d.LabelColumn
	}

	return o
}
