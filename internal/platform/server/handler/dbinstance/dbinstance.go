package dbinstance

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mydb/internal/application/service"
	"mydb/internal/domain"
)

type DbInstanceHandler struct {
	updateInstancesService *service.UpdateInstancesService
}

func NewDbInstanceHandler(updateInstancesService *service.UpdateInstancesService) *DbInstanceHandler {
	return &DbInstanceHandler{
		updateInstancesService: updateInstancesService,
	}
}

func (h *DbInstanceHandler) UpdateDbInstances(w http.ResponseWriter, r *http.Request) {
	var instances []domain.DbInstance
	if err := json.NewDecoder(r.Body).Decode(&instances); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, err.Error())
		return
	}
	h.updateInstancesService.Execute(instances)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Instances Updated Successfully")
}
