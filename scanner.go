package sungrowcsv

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// MaxLineSize is the longest input line a [Scanner] accepts.
const MaxLineSize = 1 << 20

// Scanner reads input lines and turns the record-bearing ones into records.
// Lines may end in "\n" or "\r\n".
type Scanner struct {
	sc      *bufio.Scanner
	lines   int
	skipped int
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Scanner{sc: sc}
}

// Records yields one record per record-bearing line. Lines that produce no
// output are counted in [Scanner.Skipped]. Check [Scanner.Err] once the
// iteration ends.
func (s *Scanner) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for s.sc.Scan() {
			s.lines++
			rec, ok := ParseLine(s.sc.Text())
			if !ok {
				s.skipped++
				continue
			}
			rec.Line = s.lines
			if !yield(rec) {
				return
			}
		}
		s.err = s.sc.Err()
	}
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error { return s.err }

// Lines returns the number of input lines read so far.
func (s *Scanner) Lines() int { return s.lines }

// Skipped returns the number of lines that produced no record.
func (s *Scanner) Skipped() int { return s.skipped }

// Convert reads lines from r and writes them to w in format f. With the CSV
// format each record-bearing line becomes exactly one output line and every
// other line is dropped.
func Convert(w io.Writer, r io.Reader, f Format) error {
	s := NewScanner(r)
	err := WriteIter(w, f, s.Records())
	return errors.Join(err, s.Err())
}
