package sungrowcsv

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

// Heavy lines, matching the input delimiter.
var heavyBorder = borderChars{
	topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
	horizontal: "━", vertical: "┃",
	topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
	cross: "╋",
}

func writeTable(w io.Writer, records []Record) error {
	return WriteTable(w, nil, records...)
}

// WriteTable renders records as a bordered table under an optional header
// row. Header cells are centered and columns holding only numbers are
// right-aligned.
func WriteTable(w io.Writer, header []string, records ...Record) error {
	if len(records) == 0 && len(header) == 0 {
		return nil
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Row()
	}
	numCols := colCount(header, rows)
	widths := computeWidths(numCols, header, rows)
	aligns := columnAligns(numCols, records)
	bc := heavyBorder

	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, headerAligns(numCols), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// columnAligns right-aligns every column whose cells are all numbers.
// Records shorter than the widest one do not affect the missing columns.
func columnAligns(numCols int, records []Record) []Alignment {
	aligns := make([]Alignment, numCols)
	for col := range numCols {
		numeric, seen := true, false
		for _, rec := range records {
			if col >= len(rec.Fields) {
				continue
			}
			seen = true
			if !rec.Fields[col].Affinity.IsNumber() {
				numeric = false
				break
			}
		}
		if seen && numeric {
			aligns[col] = AlignRight
		}
	}
	return aligns
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func headerAligns(numCols int) []Alignment {
	aligns := make([]Alignment, numCols)
	for i := range aligns {
		aligns[i] = AlignCenter
	}
	return aligns
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(alignCell(cell, width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
