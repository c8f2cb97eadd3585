package service

import (
	"log"

	"mydb/internal/domain"
	"mydb/internal/platform/client"
	"mydb/internal/platform/config"
)

type GetAllInstancesService struct {
	configServer    *client.ConfigServerClient
	instanceManager *domain.DbInstanceManager
	config          config.Config
}

func NewGetAllInstancesService(configServer *client.ConfigServerClient,
	instanceManager *domain.DbInstanceManager, config config.Config) *GetAllInstancesService {
	return &GetAllInstancesService{
		configServer:    configServer,
		instanceManager: instanceManager,
		config:          config,
	}
}

func (g *GetAllInstancesService) Execute() error {
	if g.config.ConfigServerUrl == "" {
		return nil
	}

	instances, err := g.configServer.FindAllInstances()
	if err != nil {
		return err
	}

	g.instanceManager.SetReplicas(instances)
	log.Println("Retrieved", len(instances), "replica instances from config server")
	return nil
}
