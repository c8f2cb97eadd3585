package service

import (
	"mydb/internal/domain"
	"mydb/internal/platform/parser"
)

// ParseStatementService exposes the SQL parser on its own. The resulting
// statement values are not executed against any table.
type ParseStatementService struct {
	parser *parser.Parser
}

func NewParseStatementService(parser *parser.Parser) *ParseStatementService {
	return &ParseStatementService{
		parser: parser,
	}
}

type ParseStatementCommand struct {
	SQL string
}

type ParseStatementResult struct {
	Statement domain.Statement
}

func (s *ParseStatementService) Execute(command ParseStatementCommand) (ParseStatementResult, error) {
	stmt, err := s.parser.Parse(command.SQL)
	if err != nil {
		return ParseStatementResult{}, err
	}
	return ParseStatementResult{Statement: stmt}, nil
}
