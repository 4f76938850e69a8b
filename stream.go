package sungrowcsv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteIter formats records from an iterator and writes them to w as they
// arrive. CSV, TSV, JSONL and GoTemplate write each record immediately. JSON
// is streamed as array elements. YAML, Table and Markdown need every record
// for layout, so records are collected first.
func WriteIter(w io.Writer, f Format, seq iter.Seq[Record]) error {
	switch f {
	case CSV:
		return streamRows(w, seq, writeCSVRow)
	case TSV:
		return streamRows(w, seq, writeTSVRow)
	case JSONL:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return streamRows(w, seq, func(_ io.Writer, rec Record) error {
			return enc.Encode(rec)
		})
	case JSON:
		return streamJSON(w, seq)
	case YAML, Table, Markdown:
		return streamCollect(w, f, seq)
	default:
		if tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			tmpl, err := parseTemplate(tmplStr)
			if err != nil {
				return err
			}
			return streamRows(w, seq, func(w io.Writer, rec Record) error {
				return writeTemplateRow(w, tmpl, rec)
			})
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan formats records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan Record) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamRows(w io.Writer, seq iter.Seq[Record], write func(io.Writer, Record) error) error {
	for rec := range seq {
		if err := write(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect(w io.Writer, f Format, seq iter.Seq[Record]) error {
	var records []Record
	for rec := range seq {
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil
	}
	return Write(w, f, records...)
}

// streamJSON produces the same bytes as writeJSON without holding every
// record in memory.
func streamJSON(w io.Writer, seq iter.Seq[Record]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	first := true
	for rec := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		buf.Reset()
		if err := enc.Encode(rec); err != nil {
			return err
		}
		if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
