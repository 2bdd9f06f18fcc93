package arena

import (
	"fmt"
	"strings"
)

// ConsoleFormatter renders tables for terminal display. Rendering is purely
// cosmetic; the logical content stays the table's records.
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatTable renders a table with aligned columns.
func (f *ConsoleFormatter) FormatTable(table *Table) string {
	if table == nil || table.Len() == 0 {
		return "No results\n"
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}

	cells := make([][]string, 0, table.Len())
	for _, row := range table.Records {
		line := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			line[i] = formatCell(row[col])
			if len(line[i]) > widths[i] {
				widths[i] = len(line[i])
			}
		}
		cells = append(cells, line)
	}

	var sb strings.Builder
	for i, col := range table.Columns {
		fmt.Fprintf(&sb, "%-*s  ", widths[i], strings.ToUpper(col))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("━", totalWidth(widths)))
	sb.WriteString("\n")

	for _, line := range cells {
		for i, cell := range line {
			fmt.Fprintf(&sb, "%-*s  ", widths[i], cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; keep integers clean.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total
}
