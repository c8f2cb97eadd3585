package service

import (
	"mydb/internal/domain"
)

type QueryTableService struct {
	repository domain.TableRepository
}

func NewQueryTableService(repository domain.TableRepository) *QueryTableService {
	return &QueryTableService{
		repository: repository,
	}
}

type QueryTableQuery struct {
	Table   string
	Columns []string
}

type QueryTableResult struct {
	Result domain.ResultSet
}

func (s *QueryTableService) Execute(query QueryTableQuery) (QueryTableResult, error) {
	result, err := s.repository.Query(query.Table, query.Columns)
	if err != nil {
		return QueryTableResult{}, err
	}
	return QueryTableResult{Result: result}, nil
}
