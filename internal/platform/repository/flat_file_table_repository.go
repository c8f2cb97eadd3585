package repository

import (
	"fmt"
	"os"

	"mydb/internal/domain"
	"mydb/internal/platform/repository/flatfile"
)

// FlatFileTableRepository fronts the flat-file engine: it resolves logical
// table names to files inside the configured data directory and opens a
// fresh handle per operation.
type FlatFileTableRepository struct {
	dir string
}

func NewFlatFileTableRepository(dir string) *FlatFileTableRepository {
	return &FlatFileTableRepository{
		dir: dir,
	}
}

func (r *FlatFileTableRepository) CreateTable(name string, info domain.TableInfo) error {
	_, err := flatfile.CreateTable(name, r.dir, info)
	return err
}

func (r *FlatFileTableRepository) Insert(table string, values ...domain.ColumnValue) error {
	t, err := r.open(table)
	if err != nil {
		return err
	}
	return t.Insert(values...)
}

func (r *FlatFileTableRepository) Query(table string, columns []string) (domain.ResultSet, error) {
	t, err := r.open(table)
	if err != nil {
		return domain.ResultSet{}, err
	}
	return t.Query(columns)
}

func (r *FlatFileTableRepository) Length(table string) (int64, error) {
	t, err := r.open(table)
	if err != nil {
		return 0, err
	}
	return t.Length()
}

func (r *FlatFileTableRepository) open(name string) (*flatfile.Table, error) {
	t, err := flatfile.OpenTable(flatfile.Location(r.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTableDoesNotExist, name)
		}
		return nil, err
	}
	return t, nil
}
