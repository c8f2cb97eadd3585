package statement

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydb/internal/application/service"
	"mydb/internal/platform/parser"
)

func do(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewStatementHandler(service.NewParseStatementService(parser.New()))
	req := httptest.NewRequest(http.MethodPost, "/statements", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ParseStatement(rec, req)
	return rec
}

func TestParseSelectOverHTTP(t *testing.T) {
	rec := do(t, `{"sql":"SELECT * FROM foo"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response ParseStatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, ParseStatementResponse{
		Type:    "select",
		Columns: []string{"*"},
		Tables:  []string{"FOO"},
	}, response)
}

func TestParseInsertOverHTTP(t *testing.T) {
	rec := do(t, `{"sql":"INSERT INTO foo VALUES"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response ParseStatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, ParseStatementResponse{Type: "insert", Table: "FOO"}, response)
}

func TestParseInvalidSQLOverHTTP(t *testing.T) {
	rec := do(t, `{"sql":"Xelect A from Sys.dual"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
