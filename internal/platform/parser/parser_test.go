package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydb/internal/domain"
)

func TestParseSimpleSelect(t *testing.T) {
	stmt, err := New().Parse("SELECT * FROM foo")
	require.NoError(t, err)
	assert.Equal(t, domain.SelectStatement{Columns: []string{"*"}, Tables: []string{"FOO"}}, stmt)
}

func TestParseSimpleInsert(t *testing.T) {
	stmt, err := New().Parse("INSERT INTO foo VALUES")
	require.NoError(t, err)
	assert.Equal(t, domain.InsertStatement{Table: "FOO"}, stmt)
}

func TestParseSelectVariants(t *testing.T) {
	tests := []struct {
		sql     string
		columns []string
		tables  []string
	}{
		{"SELECT * from XYZZY, ABC", []string{"*"}, []string{"XYZZY", "ABC"}},
		{"select * from SYS.XYZZY", []string{"*"}, []string{"SYS.XYZZY"}},
		{"Select A from Sys.dual", []string{"A"}, []string{"SYS.DUAL"}},
		{"Select A,B,C from Sys.dual", []string{"A", "B", "C"}, []string{"SYS.DUAL"}},
		{"Select A, B, C from Sys.dual, Table2", []string{"A", "B", "C"}, []string{"SYS.DUAL", "TABLE2"}},
		{"Select A from Sys.dual where a in ('RED','GREEN','BLUE')", []string{"A"}, []string{"SYS.DUAL"}},
		{"Select A from Sys.dual where a in ('RED','GREEN','BLUE') and b in (10,20,30)", []string{"A"}, []string{"SYS.DUAL"}},
		{"Select A,b from table1,table2 where table1.id eq table2.id", []string{"A", "B"}, []string{"TABLE1", "TABLE2"}},
	}
	for _, tc := range tests {
		stmt, err := New().Parse(tc.sql)
		require.NoError(t, err, tc.sql)
		assert.Equal(t, domain.SelectStatement{Columns: tc.columns, Tables: tc.tables}, stmt, tc.sql)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []string{
		"Xelect A, B, C from Sys.dual", // invalid SELECT keyword
		"Select A, B, C frox Sys.dual", // invalid FROM keyword
		"Select",                       // incomplete statement
		"Select * from",                // incomplete statement
		"Select &&& frox Sys.dual",     // invalid column
		"INSERT INTO foo",              // incomplete insert
		"",                             // empty input
	}
	for _, sql := range tests {
		_, err := New().Parse(sql)
		assert.Error(t, err, sql)
	}
}

func TestParseIgnoresComments(t *testing.T) {
	stmt, err := New().Parse("SELECT * FROM foo -- trailing comment")
	require.NoError(t, err)
	assert.Equal(t, domain.SelectStatement{Columns: []string{"*"}, Tables: []string{"FOO"}}, stmt)
}

func TestParseUnbalancedWhere(t *testing.T) {
	_, err := New().Parse("SELECT A FROM foo WHERE a in ('RED'")
	assert.Error(t, err)
}
