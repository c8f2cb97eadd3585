package statement

import (
	"encoding/json"
	"net/http"

	"mydb/internal/application/service"
	"mydb/internal/domain"
)

type StatementHandler struct {
	parseService *service.ParseStatementService
}

func NewStatementHandler(parseService *service.ParseStatementService) *StatementHandler {
	return &StatementHandler{
		parseService: parseService,
	}
}

type ParseStatementRequest struct {
	SQL string `json:"sql"`
}

type ParseStatementResponse struct {
	Type    string   `json:"type"`
	Columns []string `json:"columns,omitempty"`
	Tables  []string `json:"tables,omitempty"`
	Table   string   `json:"table,omitempty"`
}

func (h *StatementHandler) ParseStatement(w http.ResponseWriter, r *http.Request) {
	var request ParseStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.parseService.Execute(service.ParseStatementCommand{SQL: request.SQL})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var response ParseStatementResponse
	switch stmt := result.Statement.(type) {
	case domain.SelectStatement:
		response = ParseStatementResponse{
			Type:    "select",
			Columns: stmt.Columns,
			Tables:  stmt.Tables,
		}
	case domain.InsertStatement:
		response = ParseStatementResponse{
			Type:  "insert",
			Table: stmt.Table,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
