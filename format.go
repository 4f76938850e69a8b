package sungrowcsv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrUnknownAffinity   = errors.New("unknown affinity")
)

// Format represents an output format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
)

const goTemplatePrefix = "go-template="

var formats = []Format{CSV, TSV, JSON, JSONL, YAML, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each record using a Go
// text/template. The template is executed against a [Record] and each
// execution is followed by a newline.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write formats records and writes them to w.
func Write(w io.Writer, f Format, records ...Record) error {
	switch f {
	case CSV:
		return writeCSV(w, records)
	case TSV:
		return writeTSV(w, records)
	case JSON:
		return writeJSON(w, records)
	case JSONL:
		return writeJSONL(w, records)
	case YAML:
		return writeYAML(w, records)
	case Table:
		return writeTable(w, records)
	case Markdown:
		return writeMarkdown(w, records)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, records)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats records and returns the bytes.
func Marshal(f Format, records ...Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, records...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
