package tabconv

import (
	"bytes"
	"encoding/json"
	"io"
)

// entry is one header-keyed cell of a data row.
type entry struct {
	key   string
	value string
}

// record is a data row keyed by header cells, in header order.
type record []entry

// records projects the data rows of t onto its header. Missing cells become
// "". A repeated header cell keeps its first position and takes the value of
// its last column.
func records(t Table) []record {
	header := t.Header()
	out := make([]record, 0, len(t.Body()))
	for _, row := range t.Body() {
		rec := make(record, 0, len(header))
		index := make(map[string]int, len(header))
		for i, key := range header {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			if j, seen := index[key]; seen {
				rec[j].value = value
				continue
			}
			index[key] = len(rec)
			rec = append(rec, entry{key: key, value: value})
		}
		out = append(out, rec)
	}
	return out
}

// MarshalJSON writes the record as an object with keys in header order.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(&buf, e.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(&buf, e.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends '\n'
	return nil
}

// writeJSON needs a header and at least one data row.
func writeJSON(w io.Writer, t Table) error {
	if len(t) < 2 {
		return ErrNoContent
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records(t)); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
