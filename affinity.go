package sungrowcsv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Affinity is the inferred storage category of a field, named after the
// SQLite type affinities. Only [Null], [Text], [Integer] and [Real] are ever
// produced by [Classify].
type Affinity string

const (
	None    Affinity = ""
	Blob    Affinity = "blob"
	Text    Affinity = "text"
	Numeric Affinity = "numeric"
	Integer Affinity = "integer"
	Real    Affinity = "real"
	Null    Affinity = "null"
)

var affinities = []Affinity{None, Blob, Text, Numeric, Integer, Real, Null}

// Affinities returns every affinity variant, including the ones [Classify]
// never produces.
func Affinities() []Affinity {
	out := make([]Affinity, len(affinities))
	copy(out, affinities)
	return out
}

// ParseAffinity looks up an affinity by its name or keyword, ignoring case.
func ParseAffinity(s string) (Affinity, error) {
	for _, a := range affinities {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAffinity, s)
}

// Name returns the canonical lowercase name, as reported by SQLite's typeof().
func (a Affinity) Name() string { return string(a) }

// Keyword returns the uppercase form used in SQL statements.
func (a Affinity) Keyword() string { return strings.ToUpper(string(a)) }

// String returns the keyword form.
func (a Affinity) String() string { return a.Keyword() }

// IsNumber reports whether a field of this affinity is emitted unquoted.
func (a Affinity) IsNumber() bool {
	return a == Integer || a == Numeric || a == Real
}

// Classify infers the affinity of value. A nil value is the null marker.
func Classify(value *string) Affinity {
	if value == nil {
		return Null
	}
	a, _ := classify(*value)
	return a
}

// ClassifyString is Classify for a value that is known to be present.
func ClassifyString(s string) Affinity {
	return Classify(&s)
}

func classify(s string) (Affinity, float64) {
	s = trimBlank(s)
	if s == "" {
		return Null, 0
	}
	f, ok := parseNumber(s)
	if !ok {
		return Text, 0
	}
	if isInteger(f) {
		return Integer, f
	}
	return Real, f
}

// parseNumber parses an already trimmed field. A leading dot is read as
// "0." so ".5" parses the same as "0.5".
func parseNumber(s string) (float64, bool) {
	if utf8.RuneCountInString(s) > 1 && strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow still yields ±Inf; the text is a well-formed number.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// 2^63 is exactly representable, and anything at or above it does not fit
// an int64 even though float64(math.MaxInt64) rounds up to it.
const twoTo63 = float64(1 << 63)

func isInteger(f float64) bool {
	if !(f >= -twoTo63 && f < twoTo63) {
		return false
	}
	return math.Floor(f) == f && math.Ceil(f) == f
}

// trimBlank strips tabs and Unicode space separators. Line breaks and other
// control characters are kept.
func trimBlank(s string) string {
	return strings.TrimFunc(s, isBlank)
}

func isBlank(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}
