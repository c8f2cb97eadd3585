package flatfile

import (
	"fmt"
	"io"

	"mydb/internal/domain"
)

// serializeRow concatenates the encoded value of every schema column, in
// schema order. The caller must supply exactly the schema's columns;
// completeness is validated by Table.Insert, not here.
func serializeRow(info domain.TableInfo, values map[string]any) ([]byte, error) {
	row := make([]byte, 0, info.RowLength())
	for _, col := range info.Columns {
		encoded, err := serializeValue(col.Datatype, values[col.Name])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		row = append(row, encoded...)
	}
	return row, nil
}

// deserializeRow reads the requested columns of the row starting at rowStart,
// in requested order. It seeks straight to each column's slot, so only the
// bytes of requested columns are ever read.
func deserializeRow(info domain.TableInfo, r io.ReadSeeker, rowStart int64, columns []string) ([]any, error) {
	values := make([]any, 0, len(columns))
	for _, name := range columns {
		col, ok := info.Column(name)
		if !ok {
			return nil, &domain.ColumnDoesNotExistError{Columns: []string{name}}
		}
		offset, _ := info.Offset(name)
		if _, err := r.Seek(rowStart+int64(offset), io.SeekStart); err != nil {
			return nil, err
		}
		value, err := deserializeValue(col.Datatype, r)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		values = append(values, value)
	}
	return values, nil
}
