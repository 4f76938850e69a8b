package sungrowcsv

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, records []Record) error {
	for _, rec := range records {
		if err := writeTSVRow(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, rec Record) error {
	_, err := fmt.Fprintln(w, strings.Join(rec.Row(), "\t"))
	return err
}
