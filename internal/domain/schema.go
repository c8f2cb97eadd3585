package domain

// ColumnInfo describes one column of a table. Values are immutable once
// constructed; column order inside a TableInfo is the on-disk layout order.
type ColumnInfo struct {
	Name     string   `json:"name"`
	Datatype Datatype `json:"datatype"`
}

// TableInfo is the schema of a table. Offsets and row length are derived from
// the column list once at construction time and cached for the lifetime of
// the value.
type TableInfo struct {
	Columns []ColumnInfo `json:"columns"`

	offsets   map[string]int
	byName    map[string]ColumnInfo
	rowLength int
}

// NewTableInfo validates the column list and precomputes the byte offsets of
// every column and the total row length.
func NewTableInfo(columns []ColumnInfo) (TableInfo, error) {
	if len(columns) == 0 {
		return TableInfo{}, ErrEmptySchema
	}

	offsets := make(map[string]int, len(columns))
	byName := make(map[string]ColumnInfo, len(columns))
	offset := 0
	for _, col := range columns {
		if col.Name == "" {
			return TableInfo{}, ErrEmptyColumnName
		}
		if !col.Datatype.Valid() {
			return TableInfo{}, &UnknownDatatypeError{Datatype: col.Datatype}
		}
		if _, exists := byName[col.Name]; exists {
			return TableInfo{}, &DuplicateColumnError{Column: col.Name}
		}
		offsets[col.Name] = offset
		byName[col.Name] = col
		offset += col.Datatype.Length()
	}

	return TableInfo{
		Columns:   columns,
		offsets:   offsets,
		byName:    byName,
		rowLength: offset,
	}, nil
}

// Offset returns the byte offset of the column inside a row.
func (t TableInfo) Offset(column string) (int, bool) {
	off, ok := t.offsets[column]
	return off, ok
}

func (t TableInfo) Column(name string) (ColumnInfo, bool) {
	col, ok := t.byName[name]
	return col, ok
}

func (t TableInfo) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// RowLength is the stride between consecutive rows on disk.
func (t TableInfo) RowLength() int {
	return t.rowLength
}

func (t TableInfo) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// TableRepository is the storage layer's entire programmatic surface for a
// future executor.
type TableRepository interface {
	CreateTable(name string, info TableInfo) error
	Insert(table string, values ...ColumnValue) error
	Query(table string, columns []string) (ResultSet, error)
	Length(table string) (int64, error)
}
