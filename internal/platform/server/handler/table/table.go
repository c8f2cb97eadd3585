package table

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mydb/internal/application/service"
	"mydb/internal/domain"
)

type TableHandler struct {
	createService *service.CreateTableService
	insertService *service.InsertRowService
	queryService  *service.QueryTableService
	lengthService *service.TableLengthService
}

func NewTableHandler(createService *service.CreateTableService,
	insertService *service.InsertRowService,
	queryService *service.QueryTableService,
	lengthService *service.TableLengthService) *TableHandler {
	return &TableHandler{
		createService: createService,
		insertService: insertService,
		queryService:  queryService,
		lengthService: lengthService,
	}
}

type CreateTableRequest struct {
	Name    string              `json:"name"`
	Columns []domain.ColumnInfo `json:"columns"`
}

type CreateTableResponse struct {
	Table     string              `json:"table"`
	Columns   []domain.ColumnInfo `json:"columns"`
	RowLength int                 `json:"row_length"`
}

type InsertRowRequest struct {
	Values map[string]any `json:"values"`
}

type QueryTableResponse struct {
	Columns []string         `json:"columns"`
	Count   int              `json:"count"`
	Rows    []map[string]any `json:"rows"`
}

type TableLengthResponse struct {
	Table  string `json:"table"`
	Length int64  `json:"length"`
}

func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var request CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.createService.Execute(service.CreateTableCommand{
		Name:    request.Name,
		Columns: request.Columns,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTableResponse{
		Table:     result.Table,
		Columns:   result.Info.Columns,
		RowLength: result.Info.RowLength(),
	})
}

func (h *TableHandler) InsertRow(w http.ResponseWriter, r *http.Request) {
	var request InsertRowRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	values := make([]domain.ColumnValue, 0, len(request.Values))
	for name, value := range request.Values {
		values = append(values, domain.ColumnValue{Name: name, Value: value})
	}

	err := h.insertService.Execute(service.InsertRowCommand{
		Table:  chi.URLParam(r, "name"),
		Values: values,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *TableHandler) QueryTable(w http.ResponseWriter, r *http.Request) {
	columnsParam := r.URL.Query().Get("columns")
	if columnsParam == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing columns query parameter"))
		return
	}
	columns := strings.Split(columnsParam, ",")

	result, err := h.queryService.Execute(service.QueryTableQuery{
		Table:   chi.URLParam(r, "name"),
		Columns: columns,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QueryTableResponse{
		Columns: result.Result.Columns,
		Count:   result.Result.Len(),
		Rows:    result.Result.Records(),
	})
}

func (h *TableHandler) TableLength(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	result, err := h.lengthService.Execute(service.TableLengthQuery{Table: name})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TableLengthResponse{Table: name, Length: result.Length})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeDomainError(w http.ResponseWriter, err error) {
	var columnErr *domain.ColumnDoesNotExistError
	var missingErr *domain.MissingColumnsError
	var duplicateErr *domain.DuplicateColumnError
	var datatypeErr *domain.UnknownDatatypeError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrTableExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrTableDoesNotExist):
		status = http.StatusNotFound
	case errors.As(err, &missingErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &columnErr),
		errors.As(err, &duplicateErr),
		errors.As(err, &datatypeErr),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrEmptySchema),
		errors.Is(err, domain.ErrEmptyColumnName),
		errors.Is(err, domain.ErrValueTooLarge),
		errors.Is(err, domain.ErrValueOutOfRange):
		status = http.StatusBadRequest
	}
	writeError(w, status, err)
}
