package sungrowcsv

import (
	"io"
)

func writeCSV(w io.Writer, records []Record) error {
	for _, rec := range records {
		if err := writeCSVRow(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, rec Record) error {
	_, err := io.WriteString(w, rec.CSV()+"\n")
	return err
}
