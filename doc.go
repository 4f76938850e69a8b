// Package sungrowcsv converts ┃-delimited text records into CSV.
//
// Each input line is split on [Delimiter]. Fields are trimmed of surrounding
// blanks and empty fields are dropped. A line with no delimiter, or with no
// non-empty field, produces no output at all.
//
// # Affinity
//
// Every field is classified with [Classify], which borrows SQLite's type
// affinity names. Text that parses as a float64 is [Integer] when it is a
// whole number inside the int64 range and [Real] otherwise. Anything else is
// [Text], and blank input is [Null]. A leading dot is read as "0.", so ".5"
// is a real.
//
// # CSV
//
// [FormatLine] joins the retained fields with commas. Fields whose affinity
// [Affinity.IsNumber] are written exactly as they appeared; all other fields
// are wrapped in double quotes:
//
//	line, ok := sungrowcsv.FormatLine("Alice┃42┃3.14┃")
//	// line == `"Alice",42,3.14`, ok == true
//
// Double quotes inside a field are passed through without escaping, so a
// field such as `say "hi"` produces output that strict CSV readers reject.
//
// # Other formats
//
// [Write], [WriteIter] and [Convert] also render records as TSV, JSON,
// JSONL, YAML, a bordered text table, a Markdown table, or through a Go
// template created with [GoTemplate]. JSON and YAML encode numbers as
// numbers. Use [ParseFormat] to turn a flag value into a [Format].
//
// # Errors
//
// Classification and line formatting never fail. The package exports
// sentinel errors for the rest:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrUnknownAffinity] — unknown affinity name
package sungrowcsv
