package sungrowcsv

import (
	"math"
	"strconv"
	"strings"
)

// Delimiter separates fields in an input line.
const Delimiter = '┃'

const delimiter = string(Delimiter)

// Field is a trimmed, non-empty piece of an input line.
type Field struct {
	Text     string
	Affinity Affinity
}

// NewField trims text and classifies it.
func NewField(text string) Field {
	text = trimBlank(text)
	return Field{Text: text, Affinity: ClassifyString(text)}
}

// Value returns the field as a typed value: int64 for integers, float64 for
// finite reals and numerics, and the text for everything else.
func (f Field) Value() any {
	if f.Affinity == Integer {
		// Plain digits parse exactly; float64 loses precision above 2^53.
		if i, err := strconv.ParseInt(f.Text, 10, 64); err == nil {
			return i
		}
	}
	n, ok := parseNumber(f.Text)
	if !ok {
		return f.Text
	}
	switch f.Affinity {
	case Integer:
		return int64(n)
	case Real, Numeric:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return f.Text
		}
		return n
	default:
		return f.Text
	}
}

// Record holds the retained fields of one input line.
type Record struct {
	// Line is the 1-based source line number, or 0 if the record was not
	// read by a [Scanner].
	Line   int
	Fields []Field
}

// ParseLine splits raw on [Delimiter] and keeps the non-empty fields. It
// reports false when raw has no delimiter or every field is empty.
func ParseLine(raw string) (Record, bool) {
	parts := strings.Split(raw, delimiter)
	if len(parts) < 2 {
		return Record{}, false
	}
	var rec Record
	for _, p := range parts {
		f := NewField(p)
		if f.Text == "" {
			continue
		}
		rec.Fields = append(rec.Fields, f)
	}
	if len(rec.Fields) == 0 {
		return Record{}, false
	}
	return rec, true
}

// FormatLine converts raw into a CSV line without a terminator. It reports
// false when the line produces no output at all.
func FormatLine(raw string) (string, bool) {
	rec, ok := ParseLine(raw)
	if !ok {
		return "", false
	}
	return rec.CSV(), true
}

// Row returns the field texts.
func (r Record) Row() []string {
	row := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		row[i] = f.Text
	}
	return row
}

// Values returns the typed value of every field.
func (r Record) Values() []any {
	vals := make([]any, len(r.Fields))
	for i, f := range r.Fields {
		vals[i] = f.Value()
	}
	return vals
}

// CSV renders the record as a comma-separated line. Numbers are written as
// is and everything else is wrapped in double quotes. Quotes inside a field
// are not escaped.
func (r Record) CSV() string {
	var sb strings.Builder
	for i, f := range r.Fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		if f.Affinity.IsNumber() {
			sb.WriteString(f.Text)
			continue
		}
		sb.WriteByte('"')
		sb.WriteString(f.Text)
		sb.WriteByte('"')
	}
	return sb.String()
}
