package domain

import (
	"bytes"
	"encoding/json"
)

// Table is a synthetic, row-major dataset. Rows[i][j] holds the value of Columns[j].
type Table struct {
	Columns []string
	Rows    [][]any
}

func (t Table) Len() int {
	return len(t.Rows)
}

// Records exposes the rows as name-to-value mappings that keep column order when encoded.
func (t Table) Records() []Record {
	records := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = Record{columns: t.Columns, values: row}
	}
	return records
}

type Record struct {
	columns []string
	values  []any
}

func (r Record) Get(column string) (any, bool) {
	for i, name := range r.columns {
		if name == column {
			return r.values[i], true
		}
	}
	return nil, false
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encoder.Encode(name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := encoder.Encode(r.values[i]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Export is a serialized table ready for download.
type Export struct {
	Content   []byte
	MediaType string
	Extension string
	Filename  string
}
