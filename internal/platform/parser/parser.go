package parser

import (
	"fmt"
	"regexp"
	"strings"

	"mydb/internal/domain"
)

// Parser turns SQL text into abstract statement values. It is a standalone
// collaborator: nothing connects the statements it produces to the storage
// layer yet.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

const (
	// Identifiers may be dotted (SYS.DUAL) and are upcased, like the
	// column and table names they stand for.
	identPattern = `[A-Za-z][A-Za-z0-9_$]*(?:\.[A-Za-z][A-Za-z0-9_$]*)*`
	listPattern  = identPattern + `(?:\s*,\s*` + identPattern + `)*`
)

var (
	selectRe = regexp.MustCompile(`(?is)^SELECT\s+(\*|` + listPattern + `)\s+FROM\s+(` + listPattern + `)(?:\s+WHERE\s+(.+))?\s*$`)
	insertRe = regexp.MustCompile(`(?is)^INSERT\s+INTO\s+(` + identPattern + `)\s+VALUES\s*$`)
	binOpRe  = regexp.MustCompile(`(?i)=|!=|<=|>=|<|>|\beq\b|\bne\b|\blt\b|\ble\b|\bgt\b|\bge\b|\bin\b|\bis\b`)
)

// Parse parses one SELECT or INSERT statement. Oracle-style `--` comments are
// ignored.
func (p *Parser) Parse(sql string) (domain.Statement, error) {
	sql = strings.TrimSpace(stripComments(sql))
	upper := strings.ToUpper(sql)

	switch {
	case strings.HasPrefix(upper, "SELECT"):
		return p.parseSelect(sql)
	case strings.HasPrefix(upper, "INSERT"):
		return p.parseInsert(sql)
	}
	return nil, fmt.Errorf("unsupported SQL statement: %q", sql)
}

func (p *Parser) parseSelect(sql string) (domain.Statement, error) {
	matches := selectRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, fmt.Errorf("invalid SELECT syntax: %q", sql)
	}

	// The WHERE expression is validated but discarded: condition evaluation
	// belongs to a future query executor.
	if where := strings.TrimSpace(matches[3]); where != "" {
		if err := validateWhere(where); err != nil {
			return nil, err
		}
	}

	return domain.SelectStatement{
		Columns: splitNameList(matches[1]),
		Tables:  splitNameList(matches[2]),
	}, nil
}

func (p *Parser) parseInsert(sql string) (domain.Statement, error) {
	matches := insertRe.FindStringSubmatch(sql)
	if matches == nil {
		return nil, fmt.Errorf("invalid INSERT syntax: %q", sql)
	}
	return domain.InsertStatement{
		Table: strings.ToUpper(matches[1]),
	}, nil
}

func splitNameList(list string) []string {
	parts := strings.Split(list, ",")
	names := make([]string, len(parts))
	for i, part := range parts {
		name := strings.TrimSpace(part)
		if name != "*" {
			name = strings.ToUpper(name)
		}
		names[i] = name
	}
	return names
}

func validateWhere(expr string) error {
	depth := 0
	for _, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced parentheses in WHERE clause: %q", expr)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses in WHERE clause: %q", expr)
	}
	if !binOpRe.MatchString(expr) {
		return fmt.Errorf("invalid WHERE clause: %q", expr)
	}
	return nil
}

func stripComments(sql string) string {
	lines := strings.Split(sql, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
