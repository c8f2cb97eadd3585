package service

import (
	"mydb/internal/domain"
)

type CreateTableService struct {
	repository domain.TableRepository
}

func NewCreateTableService(repository domain.TableRepository) *CreateTableService {
	return &CreateTableService{
		repository: repository,
	}
}

type CreateTableCommand struct {
	Name    string
	Columns []domain.ColumnInfo
}

type CreateTableResult struct {
	Table string
	Info  domain.TableInfo
}

func (s *CreateTableService) Execute(command CreateTableCommand) (CreateTableResult, error) {
	info, err := domain.NewTableInfo(command.Columns)
	if err != nil {
		return CreateTableResult{}, err
	}
	if err := s.repository.CreateTable(command.Name, info); err != nil {
		return CreateTableResult{}, err
	}
	return CreateTableResult{Table: command.Name, Info: info}, nil
}
