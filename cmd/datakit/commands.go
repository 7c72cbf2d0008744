package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"

	"github.com/datakit-go/datakit/pkg/anonymize"
	"github.com/datakit-go/datakit/pkg/dataset"
	"github.com/datakit-go/datakit/pkg/export"
	"github.com/datakit-go/datakit/pkg/phase"
	"github.com/datakit-go/datakit/pkg/sheet"
)

func newAnonymizeCmd(log *slog.Logger) *cobra.Command {
	var (
		input, output string
		quasi         []string
		categorical   []string
		keep          []string
		sensitive     []string
		k             int
	)

	cmd := &cobra.Command{
		Use:   "anonymize",
		Short: "Generalize quasi-identifier columns of a CSV until it is k-anonymous",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := readCSV(input)
			if err != nil {
				return err
			}

			out, err := anonymize.Table(df,
				anonymize.QuasiIdentifiers(quasi...),
				anonymize.Categorical(categorical...),
				anonymize.Keep(keep...),
				anonymize.Sensitive(sensitive...),
				anonymize.K(k),
				anonymize.WithLogger(log),
			)
			if err != nil {
				return err
			}

			log.Info("anonymized table",
				slog.String("input", input),
				slog.Int("rows", out.Nrow()),
				slog.Int("k", k))
			return writeFrame(cmd, output, "anonymized", out)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.csv, .xlsx or .db)")
	cmd.Flags().StringSliceVar(&quasi, "quasi", nil, "quasi-identifier columns to generalize")
	cmd.Flags().StringSliceVar(&categorical, "categorical", nil, "quasi-identifier columns to treat as categorical")
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "columns to keep unmodified")
	cmd.Flags().StringSliceVar(&sensitive, "sensitive", nil, "sensitive columns to leave untouched")
	cmd.Flags().IntVarP(&k, "anonymity", "k", 2, "anonymity threshold")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("quasi")

	return cmd
}

func newReportCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print each column position and name of a CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := readCSV(input)
			if err != nil {
				return err
			}
			return dataset.ColumnReport(cmd.OutOrStdout(), df)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newPhasesCmd(log *slog.Logger) *cobra.Command {
	var input, output, column string

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "Replace a column with the development-phase span located in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := readCSV(input)
			if err != nil {
				return err
			}

			located := phase.Apply(df.Col(column))
			out := df.Mutate(located)
			if out.Error() != nil {
				return fmt.Errorf("annotating column %q: %w", column, out.Error())
			}

			log.Info("located phase spans",
				slog.String("column", column),
				slog.Int("rows", out.Nrow()))
			return writeFrame(cmd, output, "phases", out)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.csv, .xlsx or .db)")
	cmd.Flags().StringVarP(&column, "column", "c", "", "column to scan for phase vocabulary")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func readCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parsing %s: %w", path, df.Error())
	}
	return df, nil
}

// writeFrame picks the output backend from the file extension: .xlsx
// becomes a one-sheet workbook, .db a SQLite table, anything else CSV.
func writeFrame(cmd *cobra.Command, path, name string, df dataframe.DataFrame) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return sheet.Write(path, map[string]dataframe.DataFrame{name: df})
	case ".db", ".sqlite":
		return export.SQLite(cmd.Context(), path, name, df)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		return df.WriteCSV(f)
	}
}
