package arena

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Row maps field names to values for one table entry.
type Row map[string]any

// Table is an ordered, row-oriented view of a tabular API response. The
// server may reply column-oriented ({"columns": [...], "data": [[...]]}) or
// as a plain array of objects; both decode to the same logical content,
// with column order preserved.
type Table struct {
	Columns []string
	Records []Row
}

// DecodeTable normalizes a tabular JSON response. It is a pure function,
// independent of any client state.
func DecodeTable(data []byte) (*Table, error) {
	var columnar struct {
		Columns []string `json:"columns"`
		Data    [][]any  `json:"data"`
	}
	if err := json.Unmarshal(data, &columnar); err == nil && columnar.Columns != nil {
		table := &Table{Columns: columnar.Columns}
		for _, values := range columnar.Data {
			row := make(Row, len(columnar.Columns))
			for i, col := range columnar.Columns {
				if i < len(values) {
					row[col] = values[i]
				}
			}
			table.Records = append(table.Records, row)
		}
		return table, nil
	}

	var records []Row
	if err := json.Unmarshal(data, &records); err == nil {
		return &Table{Columns: recordColumns(data, records), Records: records}, nil
	}

	return nil, fmt.Errorf("unexpected tabular response shape")
}

// recordColumns recovers column order for a row-oriented response. Go maps
// lose key order, so the first object's keys are read back from the token
// stream; keys appearing only in later rows are appended sorted.
func recordColumns(data []byte, records []Row) []string {
	var columns []string
	seen := make(map[string]bool)

	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err == nil && tok == json.Delim('[') {
		if tok, err := dec.Token(); err == nil && tok == json.Delim('{') {
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					break
				}
				name, ok := key.(string)
				if !ok {
					break
				}
				columns = append(columns, name)
				seen[name] = true

				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					break
				}
			}
		}
	}

	var extra []string
	for _, row := range records {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				extra = append(extra, key)
			}
		}
	}
	sort.Strings(extra)

	return append(columns, extra...)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Head returns a table holding at most n leading records. Column order is
// shared with the receiver.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.Records) {
		return t
	}
	return &Table{Columns: t.Columns, Records: t.Records[:n]}
}

// Filter returns a table holding the records keep accepts, in order.
func (t *Table) Filter(keep func(Row) bool) *Table {
	filtered := &Table{Columns: t.Columns}
	for _, row := range t.Records {
		if keep(row) {
			filtered.Records = append(filtered.Records, row)
		}
	}
	return filtered
}

// MarshalJSON serializes the records only; the column order is a display
// concern.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t.Records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Records)
}
