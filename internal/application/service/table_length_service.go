package service

import (
	"mydb/internal/domain"
)

type TableLengthService struct {
	repository domain.TableRepository
}

func NewTableLengthService(repository domain.TableRepository) *TableLengthService {
	return &TableLengthService{
		repository: repository,
	}
}

type TableLengthQuery struct {
	Table string
}

type TableLengthResult struct {
	Length int64
}

func (s *TableLengthService) Execute(query TableLengthQuery) (TableLengthResult, error) {
	length, err := s.repository.Length(query.Table)
	if err != nil {
		return TableLengthResult{}, err
	}
	return TableLengthResult{Length: length}, nil
}
