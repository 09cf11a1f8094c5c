package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/pipeline"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

func extractCmd() *cobra.Command {
	var (
		output string
		format string
		noMeta bool
	)

	cmd := &cobra.Command{
		Use:   "extract <statement.pdf> [more files...]",
		Short: "Extract transactions from statement documents",
		Long: `Extract parses one or more statement documents (PDF, or an image of a
statement for OCR) and writes the normalized transactions next to each
input file, or to --output for a single input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q (use csv or json)", format)
			}
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output only applies to a single input file")
			}

			p := pipeline.New(parser.New())
			for _, path := range args {
				if err := extractFile(p, path, output, format, !noMeta); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (defaults to input name with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().BoolVar(&noMeta, "no-meta", false, "omit account metadata rows from CSV output")
	return cmd
}

func extractFile(p *pipeline.Pipeline, path, output, format string, includeMeta bool) error {
	st, err := p.ProcessFile(path)
	if err != nil {
		return err
	}

	if len(st.Transactions) == 0 {
		slog.Warn("no transactions found", "file", path)
	}

	outPath := output
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
	}

	switch format {
	case "json":
		w := &writer.JSONWriter{Indent: true}
		if err := w.WriteToFile(outPath, st); err != nil {
			return err
		}
	default:
		w := &writer.CSVWriter{IncludeMeta: includeMeta}
		if err := w.WriteToFile(outPath, st); err != nil {
			return err
		}
	}

	slog.Info("extracted statement",
		"file", path,
		"transactions", len(st.Transactions),
		"output", outPath)
	return nil
}
