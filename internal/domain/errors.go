package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTableExists       = errors.New("table already exists")
	ErrTableDoesNotExist = errors.New("table does not exist")
	ErrNameTooLong       = errors.New("table name is too long")

	ErrEmptySchema     = errors.New("table schema has no columns")
	ErrEmptyColumnName = errors.New("column name must not be empty")

	ErrValueTooLarge   = errors.New("value does not fit in its column slot")
	ErrValueOutOfRange = errors.New("value is out of range for its column type")
	ErrMalformedHeader = errors.New("malformed table header")
)

// ColumnDoesNotExistError names every referenced column that is absent from
// the table schema.
type ColumnDoesNotExistError struct {
	Columns []string
}

func (e *ColumnDoesNotExistError) Error() string {
	return fmt.Sprintf("column does not exist: %s", strings.Join(e.Columns, ","))
}

// MissingColumnsError signals an insert that omits schema columns. Default
// values are not implemented, so omission is always an error.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(
		"missing columns: %s. Default values is not implemented yet",
		strings.Join(e.Columns, ","),
	)
}

type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %s in schema", e.Column)
}

type UnknownDatatypeError struct {
	Datatype Datatype
}

func (e *UnknownDatatypeError) Error() string {
	return fmt.Sprintf("unknown datatype %s", e.Datatype)
}
