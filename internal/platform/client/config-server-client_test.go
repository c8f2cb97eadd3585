package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mydb/internal/domain"
)

func mockInstance() domain.DbInstance {
	return domain.DbInstance{
		Id:       "c7a1e3c2-0000-0000-0000-000000000000",
		Host:     "localhost",
		Port:     3000,
		Database: "mydb",
	}
}

func TestRegisterInstance(t *testing.T) {
	instance := mockInstance()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/instances", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req RegisterInstanceRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)

		resp := domain.DbInstance{
			Id:       req.Id,
			Host:     req.Host,
			Port:     req.Port,
			Database: req.Database,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	cli := NewConfigServerClient(server.URL)
	resp, err := cli.RegisterInstance(instance)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, instance, *resp)
}

func TestFindAllInstances(t *testing.T) {
	expected := []domain.DbInstance{mockInstance()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/instances", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(expected)
	}))
	defer server.Close()

	cli := NewConfigServerClient(server.URL)
	result, err := cli.FindAllInstances()

	assert.NoError(t, err)
	assert.Len(t, result, len(expected))
	assert.Equal(t, expected[0], result[0])
}
