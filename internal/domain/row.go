package domain

// ColumnValue is one (column, value) pair supplied to an insert.
type ColumnValue struct {
	Name  string
	Value any
}

// ResultSet is a fully materialized query result: columns in the requested
// order, rows in insertion order. Values are string for STRING columns and
// int64 for INTEGER columns.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

func (rs ResultSet) Len() int {
	return len(rs.Rows)
}

// Records renders the result as a name→value map per row.
func (rs ResultSet) Records() []map[string]any {
	records := make([]map[string]any, len(rs.Rows))
	for i, row := range rs.Rows {
		record := make(map[string]any, len(rs.Columns))
		for j, col := range rs.Columns {
			record[col] = row[j]
		}
		records[i] = record
	}
	return records
}
