package sungrowcsv

import (
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the record as a sequence of typed field values.
func (r Record) MarshalYAML() (any, error) {
	return r.Values(), nil
}

func writeYAML(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
