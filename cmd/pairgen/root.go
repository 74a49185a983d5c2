package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pairgen/corpusio"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pairgen",
	Short: "Negative-pair generation for sequence-pair classifier training data",
	Long: `pairgen manufactures plausible negative (source, target) pairs by
recombining items from an observed positive pool, provably never
recreating a true positive pair.

Example usage:
  pairgen generate --positives train.csv --reference full.csv --mode per-source --out augmented.csv
  pairgen generate --positives train.csv --background pool.csv --mode augment --amount 5000
  pairgen stats --input augmented.csv --labeled`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pairgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("separator", ";", "field separator of all tabular files")
	rootCmd.PersistentFlags().String("source-col", "source_item", "header name of the source column")
	rootCmd.PersistentFlags().String("target-col", "target_item", "header name of the target column")
	rootCmd.PersistentFlags().String("label-col", "label", "header name of the label column")

	_ = viper.BindPFlag("separator", rootCmd.PersistentFlags().Lookup("separator"))
	_ = viper.BindPFlag("source_column", rootCmd.PersistentFlags().Lookup("source-col"))
	_ = viper.BindPFlag("target_column", rootCmd.PersistentFlags().Lookup("target-col"))
	_ = viper.BindPFlag("label_column", rootCmd.PersistentFlags().Lookup("label-col"))
}

// initConfig reads in the config file and PAIRGEN_* env variables if set.
func initConfig() error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pairgen")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("PAIRGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("configuration loaded", "file", viper.ConfigFileUsed())
	}

	return nil
}

// tableOptions returns the corpusio layout assembled from flags, env and
// config file.
func tableOptions() corpusio.Options {
	opts := corpusio.DefaultOptions()
	if sep := viper.GetString("separator"); sep != "" {
		opts.Comma = rune(sep[0])
	}
	opts.SourceColumn = viper.GetString("source_column")
	opts.TargetColumn = viper.GetString("target_column")
	opts.LabelColumn = viper.GetString("label_column")

	return opts
}

// renderTable prints a borderless left-aligned table.
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header(header)
	table.Bulk(rows)
	table.Render()
}
