package flatfile

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"mydb/internal/domain"
)

const tableFileMode = 0644

// Table is a handle on one on-disk table file. The schema and the data start
// offset are read once at open time and fixed for the handle's lifetime. No
// file descriptor is held between operations: every call acquires and
// releases the file on its own.
type Table struct {
	location  string
	name      string
	info      domain.TableInfo
	dataStart int64
}

// Location resolves a logical table name to its file path inside dir. The
// base name is a percent-style encoding of the name (space as '+'), so
// arbitrary characters, path separators included, still map to a single flat
// file in dir. QueryEscape and QueryUnescape are exact inverses of each
// other, which is the contract the format needs.
func Location(dir, name string) string {
	return filepath.Join(dir, url.QueryEscape(name))
}

// OpenTable reads the header line of an existing table file and recovers the
// schema, the data start offset and the logical name.
func OpenTable(location string) (*Table, error) {
	name, err := url.QueryUnescape(filepath.Base(location))
	if err != nil {
		return nil, fmt.Errorf("decode table name: %w", err)
	}

	file, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedHeader, err)
	}
	info, dataStart, err := deserializeHeader(line)
	if err != nil {
		return nil, err
	}

	return &Table{
		location:  location,
		name:      name,
		info:      info,
		dataStart: int64(dataStart),
	}, nil
}

// CreateTable writes the serialized header as the entire content of a new
// table file and returns an opened handle. The file must not already exist.
func CreateTable(name, dir string, info domain.TableInfo) (*Table, error) {
	if n := utf8.RuneCountInString(name); n > domain.MaxTableNameLength {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrNameTooLong, n, domain.MaxTableNameLength)
	}
	header, err := serializeHeader(info)
	if err != nil {
		return nil, err
	}

	location := Location(dir, name)
	file, err := os.OpenFile(location, os.O_CREATE|os.O_EXCL|os.O_WRONLY, tableFileMode)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTableExists, name)
		}
		return nil, err
	}
	if _, err := file.Write(header); err != nil {
		file.Close()
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}

	return OpenTable(location)
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Info() domain.TableInfo {
	return t.info
}

// Insert appends one row. The provided columns must cover the schema exactly:
// unknown columns fail with ColumnDoesNotExistError naming every offender,
// and omitted columns fail because default values are not implemented.
func (t *Table) Insert(values ...domain.ColumnValue) error {
	provided := make(map[string]any, len(values))
	for _, v := range values {
		provided[v.Name] = v.Value
	}

	var extra []string
	for name := range provided {
		if !t.info.HasColumn(name) {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return &domain.ColumnDoesNotExistError{Columns: extra}
	}

	var missing []string
	for _, col := range t.info.Columns {
		if _, ok := provided[col.Name]; !ok {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingColumnsError{Columns: missing}
	}

	row, err := serializeRow(t.info, provided)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(t.location, os.O_WRONLY|os.O_APPEND, tableFileMode)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(row)
	return err
}

// Length derives the row count from the current file size. A file whose data
// section is not an exact multiple of the row length, e.g. after a crash
// mid-append, silently yields a wrong count; the format does not detect it.
func (t *Table) Length() (int64, error) {
	stat, err := os.Stat(t.location)
	if err != nil {
		return 0, err
	}
	return (stat.Size() - t.dataStart) / int64(t.info.RowLength()), nil
}

// Query scans every row and reads exactly the requested columns from each,
// returning rows in insertion order with values in requested column order.
// This is pure projection: no filtering, sorting or aggregation happens here.
func (t *Table) Query(columns []string) (domain.ResultSet, error) {
	var unknown []string
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if !t.info.HasColumn(name) && !seen[name] {
			unknown = append(unknown, name)
			seen[name] = true
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return domain.ResultSet{}, &domain.ColumnDoesNotExistError{Columns: unknown}
	}

	length, err := t.Length()
	if err != nil {
		return domain.ResultSet{}, err
	}

	file, err := os.Open(t.location)
	if err != nil {
		return domain.ResultSet{}, err
	}
	defer file.Close()

	rows := make([][]any, 0, length)
	for i := int64(0); i < length; i++ {
		rowStart := t.dataStart + i*int64(t.info.RowLength())
		row, err := deserializeRow(t.info, file, rowStart, columns)
		if err != nil {
			return domain.ResultSet{}, err
		}
		rows = append(rows, row)
	}

	return domain.ResultSet{Columns: columns, Rows: rows}, nil
}
