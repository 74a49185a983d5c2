package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairgen/corpusio"
	"github.com/katalvlaran/pairgen/negatives"
	"github.com/katalvlaran/pairgen/pairset"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate negatives and write the augmented corpus",
	Long: `Generate negative pairs for a positive corpus and write the augmented
corpus (positives first, then negatives) as a labeled table.

Examples:
  pairgen generate --positives train.csv --reference full.csv --mode per-source --out augmented.csv
  pairgen generate --positives train.csv --reference full.csv --mode per-target
  pairgen generate --positives train.csv --background pool.csv --mode augment --amount 5000 --min-len 10 --max-len 20`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("positives", "", "positive pair corpus (required)")
	generateCmd.Flags().String("reference", "", "full reference corpus used for exclusion")
	generateCmd.Flags().String("background", "", "background pool for augment mode")
	generateCmd.Flags().String("background-col", "", "header name of the background item column (default: source column)")
	generateCmd.Flags().String("mode", "per-source", "sampling mode: per-source, per-target or augment")
	generateCmd.Flags().Int("amount", 0, "negatives to draw in augment mode (0 = one per positive row)")
	generateCmd.Flags().Int64("seed", 0, "invocation seed (0 = fixed default)")
	generateCmd.Flags().Int("soft-retries", negatives.DefaultSoftRetryLimit, "rounds before random reseeding starts")
	generateCmd.Flags().Int("hard-retries", negatives.DefaultHardRetryLimit, "rounds before the shortfall is accepted")
	generateCmd.Flags().Int("min-len", 0, "minimum background item length (0 = unbounded)")
	generateCmd.Flags().Int("max-len", 0, "maximum background item length (0 = unbounded)")
	generateCmd.Flags().String("out", "", "output file (default: stdout)")

	_ = generateCmd.MarkFlagRequired("positives")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := tableOptions()

	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := negatives.ParseMode(modeName)
	if err != nil {
		return err
	}

	positivesPath, _ := cmd.Flags().GetString("positives")
	positives, err := readPairFile(positivesPath, opts)
	if err != nil {
		return err
	}

	var reference *pairset.Corpus
	if path, _ := cmd.Flags().GetString("reference"); path != "" {
		if reference, err = readPairFile(path, opts); err != nil {
			return err
		}
	}

	bopts := &negatives.Options{Logger: logger}
	bopts.Seed, _ = cmd.Flags().GetInt64("seed")
	bopts.Amount, _ = cmd.Flags().GetInt("amount")
	bopts.SoftRetryLimit, _ = cmd.Flags().GetInt("soft-retries")
	bopts.HardRetryLimit, _ = cmd.Flags().GetInt("hard-retries")

	if path, _ := cmd.Flags().GetString("background"); path != "" {
		column, _ := cmd.Flags().GetString("background-col")
		minLen, _ := cmd.Flags().GetInt("min-len")
		maxLen, _ := cmd.Flags().GetInt("max-len")
		if bopts.Background, err = readBackgroundFile(path, column, minLen, maxLen, opts); err != nil {
			return err
		}
	}

	out, report, err := negatives.Build(positives, reference, mode, bopts)
	if err != nil {
		return err
	}

	if err := writePairFile(cmd, out, opts); err != nil {
		return err
	}

	renderTable(os.Stderr,
		[]string{"metric", "value"},
		[][]string{
			{"mode", report.Mode.String()},
			{"positives", strconv.Itoa(out.Positives())},
			{"negatives", strconv.Itoa(report.Generated)},
			{"requested", strconv.Itoa(report.Requested)},
			{"shortfall", strconv.Itoa(report.Shortfall)},
			{"rounds", strconv.Itoa(report.Rounds)},
			{"unsatisfiable", strings.Join(report.Unsatisfiable, " ")},
			{"skipped targets", strings.Join(report.SkippedTargets, " ")},
			{"clipped targets", strings.Join(report.ClippedTargets, " ")},
		})

	return nil
}

func readPairFile(path string, opts corpusio.Options) (*pairset.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := corpusio.ReadPairs(f, pairset.LabelPositive, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return c, nil
}

func readBackgroundFile(path, column string, minLen, maxLen int, opts corpusio.Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	pool, err := corpusio.ReadBackground(f, column, minLen, maxLen, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return pool, nil
}

func writePairFile(cmd *cobra.Command, c *pairset.Corpus, opts corpusio.Options) error {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return corpusio.WritePairs(os.Stdout, c, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := corpusio.WritePairs(f, c, opts); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
