package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/bjaus/sungrowcsv"
	"github.com/bjaus/sungrowcsv/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	format    string
	out       string
	logLevel  string
	logFormat string
	types     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sungrowcsv [file...]",
		Short: "Convert ┃-delimited records to CSV",
		Long: "Reads lines whose fields are separated by ┃ and writes one CSV line per\n" +
			"line that has at least one non-empty field. Numbers are written bare,\n" +
			"everything else is double-quoted. With no file, or with -, reads stdin.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.Setup(cmd.ErrOrStderr(), logging.Config{
				Level:  opts.logLevel,
				Format: opts.logFormat,
			})
			if err != nil {
				return err
			}
			if opts.types {
				return writeAffinities(cmd.OutOrStdout())
			}
			f, err := sungrowcsv.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var outFile *os.File
			if opts.out != "" {
				outFile, err = os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer outFile.Close()
				out = outFile
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				if err := convertPath(logger, out, cmd.InOrStdin(), path, f); err != nil {
					return err
				}
			}
			if outFile != nil {
				return errors.Join(outFile.Sync(), outFile.Close())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "output", "o", sungrowcsv.CSV.String(), "output format (csv, tsv, json, jsonl, yaml, table, markdown, go-template=...)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	cmd.Flags().BoolVar(&opts.types, "types", false, "list the field affinities and exit")

	return cmd
}

func convertPath(logger *slog.Logger, w io.Writer, stdin io.Reader, path string, f sungrowcsv.Format) error {
	r := stdin
	name := "stdin"
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
		name = path
	}

	s := sungrowcsv.NewScanner(r)
	if err := sungrowcsv.WriteIter(w, f, s.Records()); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	logger.Info("converted", "input", name, "lines", s.Lines(), "skipped", s.Skipped())
	return nil
}

func writeAffinities(w io.Writer) error {
	var records []sungrowcsv.Record
	for _, a := range sungrowcsv.Affinities() {
		records = append(records, sungrowcsv.Record{Fields: []sungrowcsv.Field{
			{Text: strconv.Quote(a.Name()), Affinity: sungrowcsv.Text},
			{Text: strconv.Quote(a.Keyword()), Affinity: sungrowcsv.Text},
			{Text: strconv.FormatBool(a.IsNumber()), Affinity: sungrowcsv.Text},
		}})
	}
	return sungrowcsv.WriteTable(w, []string{"NAME", "KEYWORD", "NUMBER"}, records...)
}
