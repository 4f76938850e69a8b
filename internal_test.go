package sungrowcsv

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errInternalWrite = errors.New("write failed")

func TestIsInteger(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input float64
		want  bool
	}{
		"zero":             {input: 0, want: true},
		"negative":         {input: -3, want: true},
		"fraction":         {input: 1.5, want: false},
		"min int64":        {input: -twoTo63, want: true},
		"2^63":             {input: twoTo63, want: false},
		"below 2^63":       {input: math.Nextafter(twoTo63, 0), want: true},
		"below min int64":  {input: math.Nextafter(-twoTo63, math.Inf(-1)), want: false},
		"max int64 as f64": {input: float64(math.MaxInt64), want: false},
		"positive inf":     {input: math.Inf(1), want: false},
		"negative inf":     {input: math.Inf(-1), want: false},
		"nan":              {input: math.NaN(), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isInteger(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input  string
		want   float64
		wantOK bool
	}{
		"leading dot":      {input: ".5", want: 0.5, wantOK: true},
		"negative dot":     {input: "-.5", want: -0.5, wantOK: true},
		"lone dot":         {input: ".", wantOK: false},
		"hex float":        {input: "0x1p-2", want: 0.25, wantOK: true},
		"overflow":         {input: "1e400", want: math.Inf(1), wantOK: true},
		"empty":            {input: "", wantOK: false},
		"internal space":   {input: "1 2", wantOK: false},
		"trailing garbage": {input: "1x", wantOK: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimBlank(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "x y", trimBlank("  \tx y "))
	// Line breaks are not blanks.
	assert.Equal(t, "\nx\r", trimBlank(" \nx\r "))
}

func TestWriteCSVRowSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rec, _ := ParseLine("a┃1")
	err := writeCSVRow(&buf, rec)
	assert.NoError(t, err)
	assert.Equal(t, "\"a\",1\n", buf.String())
}

func TestWriteCSVRowError(t *testing.T) {
	t.Parallel()
	rec, _ := ParseLine("a┃1")
	err := writeCSVRow(&errWriterInternal{}, rec)
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestColumnAligns(t *testing.T) {
	t.Parallel()
	a, _ := ParseLine("x┃1┃2.5")
	b, _ := ParseLine("2┃y")
	aligns := columnAligns(3, []Record{a, b})
	assert.Equal(t, []Alignment{AlignLeft, AlignLeft, AlignRight}, aligns)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, AlignRight))
	assert.Equal(t, " ab ", alignCell("ab", 4, AlignCenter))
	assert.Equal(t, "abcdef", alignCell("abcdef", 4, AlignLeft))
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
