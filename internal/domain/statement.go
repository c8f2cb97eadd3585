package domain

// Statement is the abstract value produced by the SQL parser. No executor
// connects statements to the storage layer yet.
type Statement interface {
	statement()
}

type SelectStatement struct {
	Columns []string
	Tables  []string
}

type InsertStatement struct {
	Table string
}

func (SelectStatement) statement() {}
func (InsertStatement) statement() {}
