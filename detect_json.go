package tabconv

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

func looksLikeJSON(text string) bool {
	return strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{")
}

// field is one key of a decoded JSON object, kept in first-seen order.
type field struct {
	key   string
	value json.RawMessage
}

// parseJSON accepts a non-empty array whose first element is an object or an
// array. The first element's keys become the header; every element, the
// first included, is projected onto those keys. Keys that only appear in
// later elements are dropped. Arrays are keyed by index, "0" through "n-1".
func parseJSON(text string) (Table, rune, bool) {
	data := []byte(text)
	if !json.Valid(data) {
		return nil, 0, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil || len(elems) == 0 {
		return nil, 0, false
	}
	first, ok := decodeFields(elems[0])
	if !ok {
		return nil, 0, false
	}
	keys := make([]string, len(first))
	for i, f := range first {
		keys[i] = f.key
	}

	t := Table{keys}
	for _, elem := range elems {
		if isNull(elem) {
			return nil, 0, false
		}
		values := make(map[string]json.RawMessage, len(keys))
		if obj, ok := decodeFields(elem); ok {
			for _, f := range obj {
				values[f.key] = f.value
			}
		}
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = cellText(values[k])
		}
		t = append(t, row)
	}
	return t, 0, true
}

// decodeFields reads an object or an array as ordered fields.
func decodeFields(raw json.RawMessage) ([]field, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return decodeArray(raw)
	}
	return decodeObject(raw)
}

func decodeArray(raw json.RawMessage) ([]field, bool) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}
	fields := make([]field, len(values))
	for i, v := range values {
		fields[i] = field{key: strconv.Itoa(i), value: v}
	}
	return fields, true
}

// decodeObject reads a JSON object preserving key order. A repeated key keeps
// its first position and takes the last value.
func decodeObject(raw json.RawMessage) ([]field, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}
	var fields []field
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if i, seen := index[key]; seen {
			fields[i].value = value
			continue
		}
		index[key] = len(fields)
		fields = append(fields, field{key: key, value: value})
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// cellText flattens a JSON value to cell text. Strings are unquoted, numbers
// and booleans keep their literal text, null and absent values are empty, and
// arrays and objects are compacted.
func cellText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	default:
		return string(raw)
	}
}
