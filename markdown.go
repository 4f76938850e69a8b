package sungrowcsv

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeMarkdown renders a GitHub-flavored table. Input lines carry no
// header, so columns are numbered from 1.
func writeMarkdown(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := rec.Row()
		for j, cell := range row {
			row[j] = strings.ReplaceAll(cell, "|", `\|`)
		}
		rows[i] = row
	}
	numCols := colCount(nil, rows)
	header := make([]string, numCols)
	for i := range header {
		header[i] = strconv.Itoa(i + 1)
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := computeWidths(numCols, header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := columnAligns(numCols, records)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
