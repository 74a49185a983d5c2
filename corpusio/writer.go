package corpusio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pairgen/pairset"
)

// WritePairs emits c to w with a header row, preserving the stored row
// order (positives before negatives, as the engine guarantees).
//
// Complexity: O(rows).
func WritePairs(w io.Writer, c *pairset.Corpus, opts Options) error {
	o := opts.resolve()

	cw := csv.NewWriter(w)
	cw.Comma = o.Comma

	if err := cw.Write([]string{o.SourceColumn, o.TargetColumn, o.LabelColumn}); err != nil {
		return fmt.Errorf("corpusio: writing header: %w", err)
	}

	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		if err := cw.Write([]string{p.Source, p.Target, strconv.Itoa(p.Label)}); err != nil {
			return fmt.Errorf("corpusio: writing record %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
