package arena

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTable(t *testing.T) {
	t.Run("column-oriented", func(t *testing.T) {
		table, err := DecodeTable([]byte(`{"columns":["name","score"],"data":[["x",1],["y",2]]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "score"}, table.Columns)
		require.Equal(t, 2, table.Len())
		assert.Equal(t, Row{"name": "x", "score": float64(1)}, table.Records[0])
		assert.Equal(t, Row{"name": "y", "score": float64(2)}, table.Records[1])
	})

	t.Run("column-oriented with short row", func(t *testing.T) {
		table, err := DecodeTable([]byte(`{"columns":["name","score"],"data":[["x"]]}`))
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Equal(t, Row{"name": "x"}, table.Records[0])
	})

	t.Run("row-oriented preserves column order", func(t *testing.T) {
		table, err := DecodeTable([]byte(`[{"rank":1,"name":"x","score":9.5},{"rank":2,"name":"y","score":3}]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"rank", "name", "score"}, table.Columns)
		require.Equal(t, 2, table.Len())
		assert.Equal(t, "x", table.Records[0]["name"])
		assert.Equal(t, 9.5, table.Records[0]["score"])
	})

	t.Run("row-oriented with ragged keys", func(t *testing.T) {
		table, err := DecodeTable([]byte(`[{"name":"x"},{"name":"y","extra":true}]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "extra"}, table.Columns)
	})

	t.Run("empty array", func(t *testing.T) {
		table, err := DecodeTable([]byte(`[]`))
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("unexpected shape", func(t *testing.T) {
		_, err := DecodeTable([]byte(`"what"`))
		require.Error(t, err)
	})
}

func TestTableHead(t *testing.T) {
	table := &Table{
		Columns: []string{"name"},
		Records: []Row{{"name": "a"}, {"name": "b"}, {"name": "c"}},
	}

	assert.Equal(t, 2, table.Head(2).Len())
	assert.Equal(t, 3, table.Head(10).Len())
	assert.Equal(t, 3, table.Head(-1).Len())
	assert.Equal(t, "a", table.Head(1).Records[0]["name"])
}

func TestTableFilter(t *testing.T) {
	table := &Table{
		Columns: []string{"name", "score"},
		Records: []Row{
			{"name": "a", "score": 1.0},
			{"name": "b", "score": 5.0},
		},
	}

	filtered := table.Filter(func(row Row) bool {
		return row["score"].(float64) > 2
	})
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "b", filtered.Records[0]["name"])
	assert.Equal(t, table.Columns, filtered.Columns)
}

func TestTableMarshalJSON(t *testing.T) {
	table := &Table{
		Columns: []string{"name"},
		Records: []Row{{"name": "a"}},
	}

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a"}]`, string(out))

	empty := &Table{Columns: []string{"name"}}
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestConsoleFormatter(t *testing.T) {
	formatter := NewConsoleFormatter()

	t.Run("empty table", func(t *testing.T) {
		assert.Equal(t, "No results\n", formatter.FormatTable(&Table{}))
	})

	t.Run("aligns columns", func(t *testing.T) {
		table := &Table{
			Columns: []string{"name", "score"},
			Records: []Row{
				{"name": "longname", "score": float64(1)},
				{"name": "x", "score": 2.5},
			},
		}

		out := formatter.FormatTable(table)
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "SCORE")
		assert.Contains(t, out, "longname")
		assert.Contains(t, out, "2.5")
		// Integral floats render without a decimal point.
		assert.Contains(t, out, "1")
		assert.NotContains(t, out, "1.0")
	})

	t.Run("missing cell renders empty", func(t *testing.T) {
		table := &Table{
			Columns: []string{"name", "score"},
			Records: []Row{{"name": "x"}},
		}
		assert.NotPanics(t, func() { formatter.FormatTable(table) })
	})
}
