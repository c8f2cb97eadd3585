package flatfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mydb/internal/domain"
)

// tableHeader is the wire form of a schema: one JSON object on a single
// newline-terminated line at the start of the table file.
type tableHeader struct {
	Columns []domain.ColumnInfo `json:"columns"`
}

func serializeHeader(info domain.TableInfo) ([]byte, error) {
	encoded, err := json.Marshal(tableHeader{Columns: info.Columns})
	if err != nil {
		return nil, err
	}
	// A newline inside the rendered schema would corrupt the line-oriented
	// header; it indicates a schema-encoding bug.
	if bytes.ContainsRune(encoded, '\n') {
		return nil, fmt.Errorf("%w: newline in serialized schema", domain.ErrMalformedHeader)
	}
	return append(encoded, '\n'), nil
}

// deserializeHeader parses a newline-terminated header line and returns the
// schema together with the number of bytes consumed, terminator included.
// Callers use the consumed length as the table's data start offset.
func deserializeHeader(serialized []byte) (domain.TableInfo, int, error) {
	if len(serialized) == 0 || serialized[len(serialized)-1] != '\n' {
		return domain.TableInfo{}, 0, fmt.Errorf("%w: header line is not newline-terminated", domain.ErrMalformedHeader)
	}
	var header tableHeader
	if err := json.Unmarshal(serialized[:len(serialized)-1], &header); err != nil {
		return domain.TableInfo{}, 0, fmt.Errorf("%w: %v", domain.ErrMalformedHeader, err)
	}
	info, err := domain.NewTableInfo(header.Columns)
	if err != nil {
		return domain.TableInfo{}, 0, fmt.Errorf("%w: %v", domain.ErrMalformedHeader, err)
	}
	return info, len(serialized), nil
}
