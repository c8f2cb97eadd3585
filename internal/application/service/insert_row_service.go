package service

import (
	"mydb/internal/domain"
)

type InsertRowService struct {
	repository domain.TableRepository
}

func NewInsertRowService(repository domain.TableRepository) *InsertRowService {
	return &InsertRowService{
		repository: repository,
	}
}

type InsertRowCommand struct {
	Table  string
	Values []domain.ColumnValue
}

func (s *InsertRowService) Execute(command InsertRowCommand) error {
	return s.repository.Insert(command.Table, command.Values...)
}
