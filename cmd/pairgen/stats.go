package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairgen/corpusio"
	"github.com/katalvlaran/pairgen/pairset"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus shape and label balance",
	Long: `Read a pair corpus and print its shape: row counts, label balance and
unique item counts.

Examples:
  pairgen stats --input train.csv
  pairgen stats --input augmented.csv --labeled`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("input", "", "pair corpus to inspect (required)")
	statsCmd.Flags().Bool("labeled", false, "read labels from the label column instead of assuming positives")

	_ = statsCmd.MarkFlagRequired("input")
}

func runStats(cmd *cobra.Command, args []string) error {
	opts := tableOptions()

	path, _ := cmd.Flags().GetString("input")
	labeled, _ := cmd.Flags().GetBool("labeled")

	label := pairset.LabelPositive
	if labeled {
		label = -1 // read from the label column
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := corpusio.ReadPairs(f, label, opts)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	renderTable(os.Stdout,
		[]string{"metric", "value"},
		[][]string{
			{"rows", strconv.Itoa(c.Len())},
			{"positives", strconv.Itoa(c.Positives())},
			{"negatives", strconv.Itoa(c.Negatives())},
			{"unique sources", strconv.Itoa(len(c.UniqueSources()))},
			{"unique targets", strconv.Itoa(len(c.UniqueTargets()))},
		})

	return nil
}
